package replay

// defaultProcessors accumulates every variant's synthetic processor as the
// handlers_*.go files' init() functions run, so RegisterDefaultProcessors
// never needs editing when a new variant is added.
var defaultProcessors = map[string]Processor{}

func registerProcessor(variant string, p Processor) {
	defaultProcessors[variant] = p
}

// RegisterDefaultProcessors binds every variant this module implements to
// host. Variants with no processor registered here fail at dispatch time
// with ErrUnsupportedVariant rather than silently no-op'ing.
func RegisterDefaultProcessors(host *Host) {
	for variant, p := range defaultProcessors {
		host.Register(variant, p)
	}
}

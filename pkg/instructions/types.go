package instructions

import "github.com/gagliardetto/solana-go"

// Variant names, matching the instruction_name values carried by the
// ingest stream.
const (
	VariantAdminIncreaseLiquidity              = "adminIncreaseLiquidity"
	VariantCloseBundledPosition                = "closeBundledPosition"
	VariantClosePosition                       = "closePosition"
	VariantCollectFees                         = "collectFees"
	VariantCollectProtocolFees                 = "collectProtocolFees"
	VariantCollectReward                       = "collectReward"
	VariantDecreaseLiquidity                   = "decreaseLiquidity"
	VariantDeletePositionBundle                = "deletePositionBundle"
	VariantIncreaseLiquidity                   = "increaseLiquidity"
	VariantInitializeConfig                    = "initializeConfig"
	VariantInitializeFeeTier                   = "initializeFeeTier"
	VariantInitializePool                      = "initializePool"
	VariantInitializePositionBundle             = "initializePositionBundle"
	VariantInitializePositionBundleWithMetadata = "initializePositionBundleWithMetadata"
	VariantInitializeReward                    = "initializeReward"
	VariantInitializeTickArray                 = "initializeTickArray"
	VariantOpenBundledPosition                 = "openBundledPosition"
	VariantOpenPosition                        = "openPosition"
	VariantOpenPositionWithMetadata             = "openPositionWithMetadata"
	VariantSetCollectProtocolFeesAuthority      = "setCollectProtocolFeesAuthority"
	VariantSetDefaultFeeRate                   = "setDefaultFeeRate"
	VariantSetDefaultProtocolFeeRate            = "setDefaultProtocolFeeRate"
	VariantSetFeeAuthority                     = "setFeeAuthority"
	VariantSetFeeRate                          = "setFeeRate"
	VariantSetProtocolFeeRate                  = "setProtocolFeeRate"
	VariantSetRewardAuthority                  = "setRewardAuthority"
	VariantSetRewardAuthorityBySuperAuthority   = "setRewardAuthorityBySuperAuthority"
	VariantSetRewardEmissions                  = "setRewardEmissions"
	VariantSetRewardEmissionsSuperAuthority      = "setRewardEmissionsSuperAuthority"
	VariantSwap                                = "swap"
	VariantTwoHopSwap                          = "twoHopSwap"
	VariantUpdateFeesAndRewards                 = "updateFeesAndRewards"
)

// Decoded is implemented by every instruction variant record. It is a
// closed sum type in spirit: Dispatch (pkg/replay) switches on Variant()
// rather than routing through a trait-object-style interface method set.
type Decoded interface {
	Variant() string
}

type DecodedAdminIncreaseLiquidity struct {
	DataLiquidity        U128             `json:"dataLiquidity"`
	KeyWhirlpoolsConfig  solana.PublicKey `json:"keyWhirlpoolsConfig"`
	KeyWhirlpool         solana.PublicKey `json:"keyWhirlpool"`
	KeyAuthority         solana.PublicKey `json:"keyAuthority"`
}

func (DecodedAdminIncreaseLiquidity) Variant() string { return VariantAdminIncreaseLiquidity }

type DecodedCloseBundledPosition struct {
	DataBundleIndex                uint16           `json:"dataBundleIndex"`
	KeyBundledPosition             solana.PublicKey `json:"keyBundledPosition"`
	KeyPositionBundle              solana.PublicKey `json:"keyPositionBundle"`
	KeyPositionBundleTokenAccount  solana.PublicKey `json:"keyPositionBundleTokenAccount"`
	KeyPositionBundleAuthority     solana.PublicKey `json:"keyPositionBundleAuthority"`
	KeyReceiver                    solana.PublicKey `json:"keyReceiver"`
}

func (DecodedCloseBundledPosition) Variant() string { return VariantCloseBundledPosition }

type DecodedClosePosition struct {
	KeyPositionAuthority    solana.PublicKey `json:"keyPositionAuthority"`
	KeyReceiver             solana.PublicKey `json:"keyReceiver"`
	KeyPosition             solana.PublicKey `json:"keyPosition"`
	KeyPositionMint         solana.PublicKey `json:"keyPositionMint"`
	KeyPositionTokenAccount solana.PublicKey `json:"keyPositionTokenAccount"`
	KeyTokenProgram         solana.PublicKey `json:"keyTokenProgram"`
}

func (DecodedClosePosition) Variant() string { return VariantClosePosition }

type DecodedCollectFees struct {
	KeyWhirlpool            solana.PublicKey `json:"keyWhirlpool"`
	KeyPositionAuthority    solana.PublicKey `json:"keyPositionAuthority"`
	KeyPosition             solana.PublicKey `json:"keyPosition"`
	KeyPositionTokenAccount solana.PublicKey `json:"keyPositionTokenAccount"`
	KeyTokenOwnerAccountA   solana.PublicKey `json:"keyTokenOwnerAccountA"`
	KeyTokenVaultA          solana.PublicKey `json:"keyTokenVaultA"`
	KeyTokenOwnerAccountB   solana.PublicKey `json:"keyTokenOwnerAccountB"`
	KeyTokenVaultB          solana.PublicKey `json:"keyTokenVaultB"`
	KeyTokenProgram         solana.PublicKey `json:"keyTokenProgram"`
	TransferAmount0         uint64           `json:"transferAmount0"`
	TransferAmount1         uint64           `json:"transferAmount1"`
}

func (DecodedCollectFees) Variant() string { return VariantCollectFees }

type DecodedCollectProtocolFees struct {
	KeyWhirlpoolsConfig              solana.PublicKey `json:"keyWhirlpoolsConfig"`
	KeyWhirlpool                     solana.PublicKey `json:"keyWhirlpool"`
	KeyCollectProtocolFeesAuthority  solana.PublicKey `json:"keyCollectProtocolFeesAuthority"`
	KeyTokenVaultA                   solana.PublicKey `json:"keyTokenVaultA"`
	KeyTokenVaultB                   solana.PublicKey `json:"keyTokenVaultB"`
	KeyTokenDestinationA             solana.PublicKey `json:"keyTokenDestinationA"`
	KeyTokenDestinationB             solana.PublicKey `json:"keyTokenDestinationB"`
	KeyTokenProgram                  solana.PublicKey `json:"keyTokenProgram"`
	TransferAmount0                  uint64           `json:"transferAmount0"`
	TransferAmount1                  uint64           `json:"transferAmount1"`
}

func (DecodedCollectProtocolFees) Variant() string { return VariantCollectProtocolFees }

type DecodedCollectReward struct {
	DataRewardIndex         uint8            `json:"dataRewardIndex"`
	KeyWhirlpool            solana.PublicKey `json:"keyWhirlpool"`
	KeyPositionAuthority    solana.PublicKey `json:"keyPositionAuthority"`
	KeyPosition             solana.PublicKey `json:"keyPosition"`
	KeyPositionTokenAccount solana.PublicKey `json:"keyPositionTokenAccount"`
	KeyRewardOwnerAccount   solana.PublicKey `json:"keyRewardOwnerAccount"`
	KeyRewardVault          solana.PublicKey `json:"keyRewardVault"`
	KeyTokenProgram         solana.PublicKey `json:"keyTokenProgram"`
	TransferAmount0         uint64           `json:"transferAmount0"`
}

func (DecodedCollectReward) Variant() string { return VariantCollectReward }

type DecodedDecreaseLiquidity struct {
	DataLiquidityAmount   U128             `json:"dataLiquidityAmount"`
	DataTokenAmountMinA   uint64           `json:"dataTokenAmountMinA"`
	DataTokenAmountMinB   uint64           `json:"dataTokenAmountMinB"`
	KeyWhirlpool          solana.PublicKey `json:"keyWhirlpool"`
	KeyTokenProgram       solana.PublicKey `json:"keyTokenProgram"`
	KeyPositionAuthority  solana.PublicKey `json:"keyPositionAuthority"`
	KeyPosition           solana.PublicKey `json:"keyPosition"`
	KeyPositionTokenAccount solana.PublicKey `json:"keyPositionTokenAccount"`
	KeyTokenOwnerAccountA solana.PublicKey `json:"keyTokenOwnerAccountA"`
	KeyTokenOwnerAccountB solana.PublicKey `json:"keyTokenOwnerAccountB"`
	KeyTokenVaultA        solana.PublicKey `json:"keyTokenVaultA"`
	KeyTokenVaultB        solana.PublicKey `json:"keyTokenVaultB"`
	KeyTickArrayLower     solana.PublicKey `json:"keyTickArrayLower"`
	KeyTickArrayUpper     solana.PublicKey `json:"keyTickArrayUpper"`
	TransferAmount0       uint64           `json:"transferAmount0"`
	TransferAmount1       uint64           `json:"transferAmount1"`
}

func (DecodedDecreaseLiquidity) Variant() string { return VariantDecreaseLiquidity }

type DecodedDeletePositionBundle struct {
	KeyPositionBundle             solana.PublicKey `json:"keyPositionBundle"`
	KeyPositionBundleMint         solana.PublicKey `json:"keyPositionBundleMint"`
	KeyPositionBundleTokenAccount solana.PublicKey `json:"keyPositionBundleTokenAccount"`
	KeyPositionBundleOwner        solana.PublicKey `json:"keyPositionBundleOwner"`
	KeyReceiver                   solana.PublicKey `json:"keyReceiver"`
	KeyTokenProgram               solana.PublicKey `json:"keyTokenProgram"`
}

func (DecodedDeletePositionBundle) Variant() string { return VariantDeletePositionBundle }

type DecodedIncreaseLiquidity struct {
	DataLiquidityAmount     U128             `json:"dataLiquidityAmount"`
	DataTokenAmountMaxA     uint64           `json:"dataTokenAmountMaxA"`
	DataTokenAmountMaxB     uint64           `json:"dataTokenAmountMaxB"`
	KeyWhirlpool            solana.PublicKey `json:"keyWhirlpool"`
	KeyTokenProgram         solana.PublicKey `json:"keyTokenProgram"`
	KeyPositionAuthority    solana.PublicKey `json:"keyPositionAuthority"`
	KeyPosition             solana.PublicKey `json:"keyPosition"`
	KeyPositionTokenAccount solana.PublicKey `json:"keyPositionTokenAccount"`
	KeyTokenOwnerAccountA   solana.PublicKey `json:"keyTokenOwnerAccountA"`
	KeyTokenOwnerAccountB   solana.PublicKey `json:"keyTokenOwnerAccountB"`
	KeyTokenVaultA          solana.PublicKey `json:"keyTokenVaultA"`
	KeyTokenVaultB          solana.PublicKey `json:"keyTokenVaultB"`
	KeyTickArrayLower       solana.PublicKey `json:"keyTickArrayLower"`
	KeyTickArrayUpper       solana.PublicKey `json:"keyTickArrayUpper"`
	TransferAmount0         uint64           `json:"transferAmount0"`
	TransferAmount1         uint64           `json:"transferAmount1"`
}

func (DecodedIncreaseLiquidity) Variant() string { return VariantIncreaseLiquidity }

type DecodedInitializeConfig struct {
	DataDefaultProtocolFeeRate       uint16           `json:"dataDefaultProtocolFeeRate"`
	DataFeeAuthority                 solana.PublicKey `json:"dataFeeAuthority"`
	DataCollectProtocolFeesAuthority solana.PublicKey `json:"dataCollectProtocolFeesAuthority"`
	DataRewardEmissionsSuperAuthority solana.PublicKey `json:"dataRewardEmissionsSuperAuthority"`
	KeyWhirlpoolsConfig              solana.PublicKey `json:"keyWhirlpoolsConfig"`
	KeyFunder                        solana.PublicKey `json:"keyFunder"`
	KeySystemProgram                 solana.PublicKey `json:"keySystemProgram"`
}

func (DecodedInitializeConfig) Variant() string { return VariantInitializeConfig }

type DecodedInitializeFeeTier struct {
	DataTickSpacing     uint16           `json:"dataTickSpacing"`
	DataDefaultFeeRate  uint16           `json:"dataDefaultFeeRate"`
	KeyWhirlpoolsConfig solana.PublicKey `json:"keyWhirlpoolsConfig"`
	KeyFeeTier          solana.PublicKey `json:"keyFeeTier"`
	KeyFunder           solana.PublicKey `json:"keyFunder"`
	KeyFeeAuthority     solana.PublicKey `json:"keyFeeAuthority"`
	KeySystemProgram    solana.PublicKey `json:"keySystemProgram"`
}

func (DecodedInitializeFeeTier) Variant() string { return VariantInitializeFeeTier }

type DecodedInitializePool struct {
	DataTickSpacing      uint16           `json:"dataTickSpacing"`
	DataInitialSqrtPrice U128             `json:"dataInitialSqrtPrice"`
	KeyWhirlpoolsConfig  solana.PublicKey `json:"keyWhirlpoolsConfig"`
	KeyTokenMintA        solana.PublicKey `json:"keyTokenMintA"`
	KeyTokenMintB        solana.PublicKey `json:"keyTokenMintB"`
	KeyFunder            solana.PublicKey `json:"keyFunder"`
	KeyWhirlpool         solana.PublicKey `json:"keyWhirlpool"`
	KeyTokenVaultA       solana.PublicKey `json:"keyTokenVaultA"`
	KeyTokenVaultB       solana.PublicKey `json:"keyTokenVaultB"`
	KeyFeeTier           solana.PublicKey `json:"keyFeeTier"`
	KeyTokenProgram      solana.PublicKey `json:"keyTokenProgram"`
	KeySystemProgram     solana.PublicKey `json:"keySystemProgram"`
	KeyRent              solana.PublicKey `json:"keyRent"`
}

func (DecodedInitializePool) Variant() string { return VariantInitializePool }

type DecodedInitializePositionBundle struct {
	KeyPositionBundle             solana.PublicKey `json:"keyPositionBundle"`
	KeyPositionBundleMint         solana.PublicKey `json:"keyPositionBundleMint"`
	KeyPositionBundleTokenAccount solana.PublicKey `json:"keyPositionBundleTokenAccount"`
	KeyPositionBundleOwner        solana.PublicKey `json:"keyPositionBundleOwner"`
	KeyFunder                     solana.PublicKey `json:"keyFunder"`
	KeyTokenProgram               solana.PublicKey `json:"keyTokenProgram"`
	KeySystemProgram              solana.PublicKey `json:"keySystemProgram"`
	KeyRent                       solana.PublicKey `json:"keyRent"`
	KeyAssociatedTokenProgram     solana.PublicKey `json:"keyAssociatedTokenProgram"`
}

func (DecodedInitializePositionBundle) Variant() string { return VariantInitializePositionBundle }

type DecodedInitializePositionBundleWithMetadata struct {
	KeyPositionBundle             solana.PublicKey `json:"keyPositionBundle"`
	KeyPositionBundleMint         solana.PublicKey `json:"keyPositionBundleMint"`
	KeyPositionBundleMetadata     solana.PublicKey `json:"keyPositionBundleMetadata"`
	KeyPositionBundleTokenAccount solana.PublicKey `json:"keyPositionBundleTokenAccount"`
	KeyPositionBundleOwner        solana.PublicKey `json:"keyPositionBundleOwner"`
	KeyFunder                     solana.PublicKey `json:"keyFunder"`
	KeyMetadataUpdateAuth         solana.PublicKey `json:"keyMetadataUpdateAuth"`
	KeyTokenProgram               solana.PublicKey `json:"keyTokenProgram"`
	KeySystemProgram              solana.PublicKey `json:"keySystemProgram"`
	KeyRent                       solana.PublicKey `json:"keyRent"`
	KeyAssociatedTokenProgram     solana.PublicKey `json:"keyAssociatedTokenProgram"`
	KeyMetadataProgram            solana.PublicKey `json:"keyMetadataProgram"`
}

func (DecodedInitializePositionBundleWithMetadata) Variant() string {
	return VariantInitializePositionBundleWithMetadata
}

type DecodedInitializeReward struct {
	DataRewardIndex  uint8            `json:"dataRewardIndex"`
	KeyRewardAuthority solana.PublicKey `json:"keyRewardAuthority"`
	KeyFunder        solana.PublicKey `json:"keyFunder"`
	KeyWhirlpool     solana.PublicKey `json:"keyWhirlpool"`
	KeyRewardMint    solana.PublicKey `json:"keyRewardMint"`
	KeyRewardVault   solana.PublicKey `json:"keyRewardVault"`
	KeyTokenProgram  solana.PublicKey `json:"keyTokenProgram"`
	KeySystemProgram solana.PublicKey `json:"keySystemProgram"`
	KeyRent          solana.PublicKey `json:"keyRent"`
}

func (DecodedInitializeReward) Variant() string { return VariantInitializeReward }

type DecodedInitializeTickArray struct {
	DataStartTickIndex int32            `json:"dataStartTickIndex"`
	KeyWhirlpool       solana.PublicKey `json:"keyWhirlpool"`
	KeyFunder          solana.PublicKey `json:"keyFunder"`
	KeyTickArray       solana.PublicKey `json:"keyTickArray"`
	KeySystemProgram   solana.PublicKey `json:"keySystemProgram"`
}

func (DecodedInitializeTickArray) Variant() string { return VariantInitializeTickArray }

type DecodedOpenBundledPosition struct {
	DataBundleIndex               uint16           `json:"dataBundleIndex"`
	DataTickLowerIndex            int32            `json:"dataTickLowerIndex"`
	DataTickUpperIndex            int32            `json:"dataTickUpperIndex"`
	KeyBundledPosition            solana.PublicKey `json:"keyBundledPosition"`
	KeyPositionBundle             solana.PublicKey `json:"keyPositionBundle"`
	KeyPositionBundleTokenAccount solana.PublicKey `json:"keyPositionBundleTokenAccount"`
	KeyPositionBundleAuthority    solana.PublicKey `json:"keyPositionBundleAuthority"`
	KeyWhirlpool                  solana.PublicKey `json:"keyWhirlpool"`
	KeyFunder                     solana.PublicKey `json:"keyFunder"`
	KeySystemProgram              solana.PublicKey `json:"keySystemProgram"`
	KeyRent                       solana.PublicKey `json:"keyRent"`
}

func (DecodedOpenBundledPosition) Variant() string { return VariantOpenBundledPosition }

type DecodedOpenPosition struct {
	DataTickLowerIndex        int32            `json:"dataTickLowerIndex"`
	DataTickUpperIndex        int32            `json:"dataTickUpperIndex"`
	KeyFunder                 solana.PublicKey `json:"keyFunder"`
	KeyOwner                  solana.PublicKey `json:"keyOwner"`
	KeyPosition               solana.PublicKey `json:"keyPosition"`
	KeyPositionMint           solana.PublicKey `json:"keyPositionMint"`
	KeyPositionTokenAccount   solana.PublicKey `json:"keyPositionTokenAccount"`
	KeyWhirlpool              solana.PublicKey `json:"keyWhirlpool"`
	KeyTokenProgram           solana.PublicKey `json:"keyTokenProgram"`
	KeySystemProgram          solana.PublicKey `json:"keySystemProgram"`
	KeyRent                   solana.PublicKey `json:"keyRent"`
	KeyAssociatedTokenProgram solana.PublicKey `json:"keyAssociatedTokenProgram"`
}

func (DecodedOpenPosition) Variant() string { return VariantOpenPosition }

type DecodedOpenPositionWithMetadata struct {
	DataTickLowerIndex         int32            `json:"dataTickLowerIndex"`
	DataTickUpperIndex         int32            `json:"dataTickUpperIndex"`
	KeyFunder                  solana.PublicKey `json:"keyFunder"`
	KeyOwner                   solana.PublicKey `json:"keyOwner"`
	KeyPosition                solana.PublicKey `json:"keyPosition"`
	KeyPositionMint            solana.PublicKey `json:"keyPositionMint"`
	KeyPositionMetadataAccount solana.PublicKey `json:"keyPositionMetadataAccount"`
	KeyPositionTokenAccount    solana.PublicKey `json:"keyPositionTokenAccount"`
	KeyWhirlpool               solana.PublicKey `json:"keyWhirlpool"`
	KeyTokenProgram            solana.PublicKey `json:"keyTokenProgram"`
	KeySystemProgram           solana.PublicKey `json:"keySystemProgram"`
	KeyRent                    solana.PublicKey `json:"keyRent"`
	KeyAssociatedTokenProgram  solana.PublicKey `json:"keyAssociatedTokenProgram"`
	KeyMetadataProgram         solana.PublicKey `json:"keyMetadataProgram"`
	KeyMetadataUpdateAuth      solana.PublicKey `json:"keyMetadataUpdateAuth"`
}

func (DecodedOpenPositionWithMetadata) Variant() string { return VariantOpenPositionWithMetadata }

type DecodedSetCollectProtocolFeesAuthority struct {
	KeyWhirlpoolsConfig                solana.PublicKey `json:"keyWhirlpoolsConfig"`
	KeyCollectProtocolFeesAuthority    solana.PublicKey `json:"keyCollectProtocolFeesAuthority"`
	KeyNewCollectProtocolFeesAuthority solana.PublicKey `json:"keyNewCollectProtocolFeesAuthority"`
}

func (DecodedSetCollectProtocolFeesAuthority) Variant() string {
	return VariantSetCollectProtocolFeesAuthority
}

type DecodedSetDefaultFeeRate struct {
	DataDefaultFeeRate  uint16           `json:"dataDefaultFeeRate"`
	KeyWhirlpoolsConfig solana.PublicKey `json:"keyWhirlpoolsConfig"`
	KeyFeeTier          solana.PublicKey `json:"keyFeeTier"`
	KeyFeeAuthority     solana.PublicKey `json:"keyFeeAuthority"`
}

func (DecodedSetDefaultFeeRate) Variant() string { return VariantSetDefaultFeeRate }

type DecodedSetDefaultProtocolFeeRate struct {
	DataDefaultProtocolFeeRate uint16           `json:"dataDefaultProtocolFeeRate"`
	KeyWhirlpoolsConfig        solana.PublicKey `json:"keyWhirlpoolsConfig"`
	KeyFeeAuthority            solana.PublicKey `json:"keyFeeAuthority"`
}

func (DecodedSetDefaultProtocolFeeRate) Variant() string { return VariantSetDefaultProtocolFeeRate }

type DecodedSetFeeAuthority struct {
	KeyWhirlpoolsConfig solana.PublicKey `json:"keyWhirlpoolsConfig"`
	KeyFeeAuthority     solana.PublicKey `json:"keyFeeAuthority"`
	KeyNewFeeAuthority  solana.PublicKey `json:"keyNewFeeAuthority"`
}

func (DecodedSetFeeAuthority) Variant() string { return VariantSetFeeAuthority }

type DecodedSetFeeRate struct {
	DataFeeRate         uint16           `json:"dataFeeRate"`
	KeyWhirlpoolsConfig solana.PublicKey `json:"keyWhirlpoolsConfig"`
	KeyWhirlpool        solana.PublicKey `json:"keyWhirlpool"`
	KeyFeeAuthority     solana.PublicKey `json:"keyFeeAuthority"`
}

func (DecodedSetFeeRate) Variant() string { return VariantSetFeeRate }

type DecodedSetProtocolFeeRate struct {
	DataProtocolFeeRate uint16           `json:"dataProtocolFeeRate"`
	KeyWhirlpoolsConfig solana.PublicKey `json:"keyWhirlpoolsConfig"`
	KeyWhirlpool        solana.PublicKey `json:"keyWhirlpool"`
	KeyFeeAuthority     solana.PublicKey `json:"keyFeeAuthority"`
}

func (DecodedSetProtocolFeeRate) Variant() string { return VariantSetProtocolFeeRate }

type DecodedSetRewardAuthority struct {
	DataRewardIndex     uint8            `json:"dataRewardIndex"`
	KeyWhirlpool        solana.PublicKey `json:"keyWhirlpool"`
	KeyRewardAuthority  solana.PublicKey `json:"keyRewardAuthority"`
	KeyNewRewardAuthority solana.PublicKey `json:"keyNewRewardAuthority"`
}

func (DecodedSetRewardAuthority) Variant() string { return VariantSetRewardAuthority }

type DecodedSetRewardAuthorityBySuperAuthority struct {
	DataRewardIndex                    uint8            `json:"dataRewardIndex"`
	KeyWhirlpoolsConfig                solana.PublicKey `json:"keyWhirlpoolsConfig"`
	KeyWhirlpool                       solana.PublicKey `json:"keyWhirlpool"`
	KeyRewardEmissionsSuperAuthority   solana.PublicKey `json:"keyRewardEmissionsSuperAuthority"`
	KeyNewRewardAuthority              solana.PublicKey `json:"keyNewRewardAuthority"`
}

func (DecodedSetRewardAuthorityBySuperAuthority) Variant() string {
	return VariantSetRewardAuthorityBySuperAuthority
}

type DecodedSetRewardEmissions struct {
	DataRewardIndex              uint8            `json:"dataRewardIndex"`
	DataEmissionsPerSecondX64    U128             `json:"dataEmissionsPerSecondX64"`
	KeyWhirlpool                 solana.PublicKey `json:"keyWhirlpool"`
	KeyRewardAuthority            solana.PublicKey `json:"keyRewardAuthority"`
	KeyRewardVault                solana.PublicKey `json:"keyRewardVault"`
}

func (DecodedSetRewardEmissions) Variant() string { return VariantSetRewardEmissions }

type DecodedSetRewardEmissionsSuperAuthority struct {
	KeyWhirlpoolsConfig                 solana.PublicKey `json:"keyWhirlpoolsConfig"`
	KeyRewardEmissionsSuperAuthority    solana.PublicKey `json:"keyRewardEmissionsSuperAuthority"`
	KeyNewRewardEmissionsSuperAuthority solana.PublicKey `json:"keyNewRewardEmissionsSuperAuthority"`
}

func (DecodedSetRewardEmissionsSuperAuthority) Variant() string {
	return VariantSetRewardEmissionsSuperAuthority
}

type DecodedSwap struct {
	DataAmount                   uint64           `json:"dataAmount"`
	DataOtherAmountThreshold     uint64           `json:"dataOtherAmountThreshold"`
	DataSqrtPriceLimit           U128             `json:"dataSqrtPriceLimit"`
	DataAmountSpecifiedIsInput   StrictBool       `json:"dataAmountSpecifiedIsInput"`
	DataAToB                     StrictBool       `json:"dataAToB"`
	KeyTokenProgram               solana.PublicKey `json:"keyTokenProgram"`
	KeyTokenAuthority             solana.PublicKey `json:"keyTokenAuthority"`
	KeyWhirlpool                  solana.PublicKey `json:"keyWhirlpool"`
	KeyTokenOwnerAccountA         solana.PublicKey `json:"keyTokenOwnerAccountA"`
	KeyVaultA                     solana.PublicKey `json:"keyVaultA"`
	KeyTokenOwnerAccountB         solana.PublicKey `json:"keyTokenOwnerAccountB"`
	KeyVaultB                     solana.PublicKey `json:"keyVaultB"`
	KeyTickArray0                 solana.PublicKey `json:"keyTickArray0"`
	KeyTickArray1                 solana.PublicKey `json:"keyTickArray1"`
	KeyTickArray2                 solana.PublicKey `json:"keyTickArray2"`
	KeyOracle                     solana.PublicKey `json:"keyOracle"`
	TransferAmount0                uint64          `json:"transferAmount0"`
	TransferAmount1                uint64          `json:"transferAmount1"`
}

func (DecodedSwap) Variant() string { return VariantSwap }

type DecodedTwoHopSwap struct {
	DataAmount                 uint64           `json:"dataAmount"`
	DataOtherAmountThreshold   uint64           `json:"dataOtherAmountThreshold"`
	DataAmountSpecifiedIsInput StrictBool       `json:"dataAmountSpecifiedIsInput"`
	DataAToBOne                StrictBool       `json:"dataAToBOne"`
	DataAToBTwo                StrictBool       `json:"dataAToBTwo"`
	DataSqrtPriceLimitOne      U128             `json:"dataSqrtPriceLimitOne"`
	DataSqrtPriceLimitTwo      U128             `json:"dataSqrtPriceLimitTwo"`
	KeyTokenProgram            solana.PublicKey `json:"keyTokenProgram"`
	KeyTokenAuthority          solana.PublicKey `json:"keyTokenAuthority"`
	KeyWhirlpoolOne            solana.PublicKey `json:"keyWhirlpoolOne"`
	KeyWhirlpoolTwo            solana.PublicKey `json:"keyWhirlpoolTwo"`
	KeyTokenOwnerAccountOneA   solana.PublicKey `json:"keyTokenOwnerAccountOneA"`
	KeyVaultOneA               solana.PublicKey `json:"keyVaultOneA"`
	KeyTokenOwnerAccountOneB   solana.PublicKey `json:"keyTokenOwnerAccountOneB"`
	KeyVaultOneB               solana.PublicKey `json:"keyVaultOneB"`
	KeyTokenOwnerAccountTwoA   solana.PublicKey `json:"keyTokenOwnerAccountTwoA"`
	KeyVaultTwoA               solana.PublicKey `json:"keyVaultTwoA"`
	KeyTokenOwnerAccountTwoB   solana.PublicKey `json:"keyTokenOwnerAccountTwoB"`
	KeyVaultTwoB               solana.PublicKey `json:"keyVaultTwoB"`
	KeyTickArrayOne0           solana.PublicKey `json:"keyTickArrayOne0"`
	KeyTickArrayOne1           solana.PublicKey `json:"keyTickArrayOne1"`
	KeyTickArrayOne2           solana.PublicKey `json:"keyTickArrayOne2"`
	KeyTickArrayTwo0           solana.PublicKey `json:"keyTickArrayTwo0"`
	KeyTickArrayTwo1           solana.PublicKey `json:"keyTickArrayTwo1"`
	KeyTickArrayTwo2           solana.PublicKey `json:"keyTickArrayTwo2"`
	KeyOracleOne               solana.PublicKey `json:"keyOracleOne"`
	KeyOracleTwo               solana.PublicKey `json:"keyOracleTwo"`
	TransferAmount0            uint64           `json:"transferAmount0"`
	TransferAmount1            uint64           `json:"transferAmount1"`
	TransferAmount2            uint64           `json:"transferAmount2"`
	TransferAmount3            uint64           `json:"transferAmount3"`
}

func (DecodedTwoHopSwap) Variant() string { return VariantTwoHopSwap }

type DecodedUpdateFeesAndRewards struct {
	KeyWhirlpool      solana.PublicKey `json:"keyWhirlpool"`
	KeyPosition       solana.PublicKey `json:"keyPosition"`
	KeyTickArrayLower solana.PublicKey `json:"keyTickArrayLower"`
	KeyTickArrayUpper solana.PublicKey `json:"keyTickArrayUpper"`
}

func (DecodedUpdateFeesAndRewards) Variant() string { return VariantUpdateFeesAndRewards }

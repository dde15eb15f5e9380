// Package contracts holds read-only bindings for the RWA DEX contracts.
package contracts

import "github.com/ethereum/go-ethereum/accounts/abi/bind"

// RWATokenMetaData describes the view surface of an RWA token.
var RWATokenMetaData = &bind.MetaData{
	ABI: `[
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getAssetInfo","stateMutability":"view","inputs":[],"outputs":[
		{"name":"assetType","type":"uint8"},
		{"name":"totalAssetValue","type":"uint256"},
		{"name":"yieldRate","type":"uint256"},
		{"name":"maturityDate","type":"uint256"},
		{"name":"jurisdiction","type":"string"},
		{"name":"assetURI","type":"string"}]}
]`,
}

// RWAFactoryMetaData describes the token registry.
var RWAFactoryMetaData = &bind.MetaData{
	ABI: `[
	{"type":"function","name":"totalTokens","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"allTokens","stateMutability":"view","inputs":[{"name":"","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"authorizedIssuers","stateMutability":"view","inputs":[{"name":"","type":"address"}],"outputs":[{"name":"","type":"bool"}]}
]`,
}

// DEXCoreMetaData describes the pool reads of the exchange core.
var DEXCoreMetaData = &bind.MetaData{
	ABI: `[
	{"type":"function","name":"getPoolInfo","stateMutability":"view","inputs":[{"name":"token","type":"address"}],"outputs":[
		{"name":"","type":"tuple","components":[
			{"name":"reserve0","type":"uint256"},
			{"name":"reserve1","type":"uint256"},
			{"name":"totalLiquidity","type":"uint256"},
			{"name":"lastPrice","type":"uint256"},
			{"name":"lastUpdateTime","type":"uint256"}]}]}
]`,
}

// PriceOracleMetaData describes the oracle price feed.
var PriceOracleMetaData = &bind.MetaData{
	ABI: `[
	{"type":"function","name":"getPrice","stateMutability":"view","inputs":[{"name":"token","type":"address"}],"outputs":[
		{"name":"price","type":"uint256"},
		{"name":"timestamp","type":"uint256"}]}
]`,
}

// ComplianceRegistryMetaData describes the eligibility predicate.
var ComplianceRegistryMetaData = &bind.MetaData{
	ABI: `[
	{"type":"function","name":"checkCompliance","stateMutability":"view","inputs":[
		{"name":"user","type":"address"},
		{"name":"assetJurisdiction","type":"string"},
		{"name":"requiresAccredited","type":"bool"}],"outputs":[{"name":"","type":"bool"}]}
]`,
}

package jupiter

// API endpoints for Jupiter (Solana DEX aggregator)
const (
	// Jupiter API V6 Endpoints
	DefaultQuoteAPI = "https://quote-api.jup.ag/v6"
	DefaultPriceAPI = "https://price.jup.ag/v4" // Price API

	// Well-known mints
	USDCMint       = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v" // USDC Mint on Mainnet
	WrappedSolMint = "So11111111111111111111111111111111111111112"  // Wrapped SOL Mint on Mainnet

	DefaultSlippageBps = 50 // 0.5% slippage tolerance (50 basis points)
)

package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/text"

	"jup-ag-go/pkg/config"
	"jup-ag-go/pkg/jupiter"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg := config.NewConfig()
	client := jupiter.NewClient(
		jupiter.WithQuoteAPI(cfg.QuoteAPIURL),
		jupiter.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		jupiter.WithLogger(logger),
	)
	rpcClient := rpc.New(cfg.SolanaRpcURL)
	ctx := context.Background()

	wallet, err := loadWallet(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to load wallet: %v", err)
	}

	sol := solana.MustPublicKeyFromBase58(jupiter.WrappedSolMint)
	msol := solana.MustPublicKeyFromBase58("mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So")

	quote, err := client.Quote(ctx, sol, msol, 10_000_000, jupiter.QuoteConfig{
		SlippageBps: cfg.SlippageBps,
	})
	if err != nil {
		logger.Fatalf("Failed to fetch quote: %v", err)
	}
	logger.Printf("Quote: %s lamports of SOL for %s of mSOL (worst case %s)",
		quote.InAmount, quote.OutAmount, quote.OtherAmountThreshold)

	swap, err := client.Swap(ctx, jupiter.NewSwapRequest(wallet.PublicKey(), quote))
	if err != nil {
		logger.Fatalf("Failed to build swap transaction: %v", err)
	}
	logger.Printf("Swap transaction valid until block height %d", swap.LastValidBlockHeight)

	tx := swap.Transaction
	if _, err := tx.EncodeTree(text.NewTreeEncoder(os.Stdout, "Swap Transaction")); err != nil {
		logger.Printf("Warning: failed to render transaction: %v", err)
	}

	// Refresh the blockhash and sign before submitting.
	recent, err := rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		logger.Fatalf("Failed to get latest blockhash: %v", err)
	}
	tx.Message.RecentBlockhash = recent.Value.Blockhash

	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if wallet.PublicKey().Equals(key) {
			return &wallet
		}
		return nil
	}); err != nil {
		logger.Fatalf("Failed to sign transaction: %v", err)
	}

	sim, err := rpcClient.SimulateTransaction(ctx, tx)
	if err != nil {
		logger.Fatalf("Failed to simulate transaction: %v", err)
	}
	if sim.Value.Err != nil {
		logger.Fatalf("Simulation failed: %v", sim.Value.Err)
	}
	logger.Printf("Simulation consumed %d compute units", derefUnits(sim.Value.UnitsConsumed))

	sig, err := rpcClient.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		logger.Fatalf("Failed to send transaction: %v", err)
	}
	logger.Printf("Sent transaction: %s", sig)
}

// loadWallet reads the configured private key, falling back to an ephemeral
// one so the example stays runnable without funds.
func loadWallet(cfg *config.Config, logger *log.Logger) (solana.PrivateKey, error) {
	if cfg.WalletPrivateKey == "" {
		logger.Println("WALLET_PRIVATE_KEY not set, using an ephemeral keypair; fund it for a realistic run")
		return solana.NewWallet().PrivateKey, nil
	}
	return solana.PrivateKeyFromBase58(cfg.WalletPrivateKey)
}

func derefUnits(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

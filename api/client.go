package api

// API Client-
//
// Files:
//   config.go    - base URL, endpoint paths and header constants
//   options.go   - functional options for NewClient
//   types.go     - request and response shapes (nonce, auth, claims, chains, etc.)
//   errors.go    - local validation errors and remote error responses
//   base.go      - core client functionality (client struct, headers, send/classify/decode)
//   auth.go      - nonce, auth, authz and validate
//   ownership.go - token ownership checks and per-family required fields
//   chains.go    - chain metadata lookups
//
// Usage:
//   client, err := api.NewClient(apiKey)                                     // from base.go
//   nonce, err := client.Nonce(ctx, api.NonceRequest{WalletAddress: addr})   // from auth.go
//   res, err := client.Auth(ctx, api.AuthRequest{WalletAddress: addr, Signature: sig})
//   own, err := client.TokenOwnership(ctx, api.TokenOwnershipRequest{...})  // from ownership.go
//   info, err := client.ChainInfo(ctx, chains.Solana)                       // from chains.go

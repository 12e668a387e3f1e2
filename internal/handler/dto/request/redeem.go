package request

type RedeemRequest struct {
	Code string `json:"code"`
}

type TransferRequest struct {
	Code          string `json:"code"`
	WalletAddress string `json:"walletAddress"`
}

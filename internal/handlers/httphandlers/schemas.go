package httphandlers

type ConvertRequest struct {
	Sender string `json:"sender" binding:"required,eth_addr"`
	Amount string `json:"amount" binding:"required"`
}

type MintRequest struct {
	Caller string `json:"caller" binding:"required,eth_addr"`
	To     string `json:"to"     binding:"required,eth_addr"`
	Amount string `json:"amount" binding:"required"`
}

type DrainRequest struct {
	Caller string `json:"caller" binding:"required,eth_addr"`
}

type WindowRequest struct {
	Caller string `json:"caller" binding:"required,eth_addr"`
	Start  string `json:"start"  binding:"required"`
	End    string `json:"end"    binding:"required"`
}

type PauseRequest struct {
	Caller string `json:"caller" binding:"required,eth_addr"`
}

type StateResponse struct {
	Token       string `json:"token"`
	Minter      string `json:"minter"`
	Custody     string `json:"custody"`
	WindowStart string `json:"windowStart"`
	WindowEnd   string `json:"windowEnd"`
	Paused      bool   `json:"paused"`
}

type RolesResponse struct {
	Account  string `json:"account"`
	IsAdmin  bool   `json:"isAdmin"`
	IsPauser bool   `json:"isPauser"`
	IsMiner  bool   `json:"isMiner"`
}

type EventItem struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Account     string `json:"account"`
	Amount      string `json:"amount,omitempty"`
	WindowStart string `json:"windowStart,omitempty"`
	WindowEnd   string `json:"windowEnd,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Numbers   *bool `json:"numbers"`
	Special   *bool `json:"special"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password    string  `json:"password"`
	Length      int     `json:"length"`
	Strength    string  `json:"strength"`
	EntropyBits float64 `json:"entropy_bits"`
	PoolSize    int     `json:"pool_size"`
}

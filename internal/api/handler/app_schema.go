package handler

type helloRequest struct {
	Name     string `query:"name"     validate:"omitempty,min=1,max=50"`
	Language string `query:"language" validate:"omitempty"`
}

type helloResponse struct {
	Message   string `json:"message"   example:"안녕하세요, 홍길동님!"`
	Timestamp string `json:"timestamp" example:"2024-01-01T00:00:00.000Z"`
	Language  string `json:"language"  example:"ko"`
} // @name HelloResponse

type healthStatus struct {
	Status    string `json:"status"    example:"healthy"`
	Timestamp string `json:"timestamp" example:"2024-01-01T00:00:00.000Z"`
} // @name HealthStatus

type systemInfoResponse struct {
	AppName       string  `json:"appName"       example:"Simple Test API"`
	Version       string  `json:"version"       example:"1.0.0"`
	Environment   string  `json:"environment"   example:"development"`
	Uptime        string  `json:"uptime"        example:"2024-01-01T00:00:00.000Z"`
	UptimeSeconds float64 `json:"uptimeSeconds" example:"42.5"`
	MemoryUsage   float64 `json:"memoryUsage"   example:"45.2"`
} // @name SystemInfo

package api

// Handlers groups the admin HTTP handlers around their injected service.
type Handlers struct {
	admin AdminService
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(admin AdminService) *Handlers {
	return &Handlers{
		admin: admin,
	}
}

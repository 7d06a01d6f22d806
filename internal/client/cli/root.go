package cli

import "fmt"

func (a *App) getStatus() string {
	s := a.authService.CurrentSession()
	if !s.IsAuthenticated {
		return ""
	}
	name := s.DisplayName
	if name == "" {
		name = "logged in"
	}
	return fmt.Sprintf("(%s)", name)
}

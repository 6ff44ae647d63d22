package api

// GoogleLogin exchanges a Google ID credential for a backend session.
func (c *Client) GoogleLogin(credential string) (*LoginResponse, error) {
	var resp LoginResponse
	body := map[string]string{"credential": credential}
	if err := c.Post("/auth/google", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the user behind the configured token.
func (c *Client) Me() (*User, error) {
	var u User
	if err := c.Get("/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Logout invalidates the session server-side. Callers clear local state even
// when this fails.
func (c *Client) Logout() error {
	return c.Post("/auth/logout", nil, nil)
}

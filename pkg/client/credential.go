package client

// Credential is the process-wide API key and routing configuration. It is
// immutable once published; re-provisioning replaces the whole value
// atomically so in-flight requests never observe a torn state.
type Credential struct {
	// APIKey is sent as the X-Riot-Token header on every request.
	APIKey string

	// Platform is the platform routing value for summoner, league, mastery
	// and spectator endpoints (e.g. "euw1", "na1").
	Platform string

	// Region is the regional routing value for account and match endpoints
	// (e.g. "europe", "americas", "asia").
	Region string
}

// SetCredential atomically replaces the active credential. Used at startup
// and when a key is detected invalid and re-provisioned.
func (c *Client) SetCredential(cred Credential) {
	c.credential.Store(&cred)
}

// Credential returns the currently active credential.
func (c *Client) Credential() Credential {
	return *c.credential.Load()
}

// handleAuthFailure invokes the optional credential-refresh hook. When the
// hook yields a new key the credential is swapped for subsequent attempts;
// the triggering error is surfaced to the caller unchanged either way.
func (c *Client) handleAuthFailure() {
	if c.config.RefreshHook == nil {
		return
	}
	key, ok := c.config.RefreshHook()
	if !ok || key == "" {
		c.logger.Warn().Msg("Credential refresh hook returned no key")
		return
	}
	cred := c.Credential()
	cred.APIKey = key
	c.SetCredential(cred)
	c.logger.Info().Msg("Credential re-provisioned after auth failure")
}

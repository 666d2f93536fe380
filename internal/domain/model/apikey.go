//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// APIKey is one third-party credential configured on the platform.
// Value is already masked by the backend when ShouldMask is set.
type APIKey struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Category   string `json:"category"`
	Value      string `json:"value"`
	IsSet      bool   `json:"is_set"`
	ShouldMask bool   `json:"should_mask"`
}

// EditableValue is the value safe to pre-fill into an edit form.
// Masked secrets are never echoed back.
func (k APIKey) EditableValue() string {
	if k.ShouldMask {
		return ""
	}
	return k.Value
}

// APIKeysResponse is the body of GET admin/api-keys/.
type APIKeysResponse struct {
	Success         bool                `json:"success"`
	APIKeys         []APIKey            `json:"api_keys"`
	Grouped         map[string][]APIKey `json:"grouped"`
	Categories      []string            `json:"categories"`
	TotalCount      int                 `json:"total_count"`
	ConfiguredCount int                 `json:"configured_count"`
}

// Page converts the response into a single list page holding every key.
func (r APIKeysResponse) Page() Page[APIKey] {
	meta := OffsetMeta(1, max(len(r.APIKeys), 1), len(r.APIKeys), len(r.APIKeys))
	return Page[APIKey]{
		Items:  r.APIKeys,
		Meta:   meta,
		Counts: map[string]int{"total": r.TotalCount, "configured": r.ConfiguredCount},
	}
}

// UpdateAPIKeyRequest is the closed payload for PATCH admin/api-keys/{key}/update/.
type UpdateAPIKeyRequest struct {
	Value string `json:"value" validate:"required,max=4096"`
}

// UpdateAPIKeyResponse is the body returned after updating a key.
type UpdateAPIKeyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	APIKey  APIKey `json:"api_key"`
	Note    string `json:"note,omitempty"`
}

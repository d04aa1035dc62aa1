package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission maps one route to the roles allowed to call it. An empty
// Permissions list means any authenticated staff member; Skip disables the
// auth check entirely (login, register, health).
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions looks up the entry for a route pattern and method. The
// zero Permission is returned for unlisted routes, which the middleware
// treats as deny.
func (p *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(p.Endpoints, func(endpoint Permission) bool {
		return endpoint.Path == path && endpoint.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return p.Endpoints[idx]
}

func Get() *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(permissionsData, &permissions); err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}

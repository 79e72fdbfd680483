// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "fmt"

// # Permission Scopes

// Write permissions checked by the casting API. Reads are public.
const (
	PermPostActors   = "post:actors"
	PermPatchActors  = "patch:actors"
	PermDeleteActors = "delete:actors"
	PermPostMovies   = "post:movies"
	PermPatchMovies  = "patch:movies"
	PermDeleteMovies = "delete:movies"
	PermPostRoles    = "post:roles"
	PermPatchRoles   = "patch:roles"
	PermDeleteRoles  = "delete:roles"
)

// # Casting Roles

// CastingRole is a named bundle of permissions configured at the identity provider.
type CastingRole string

const (
	// Can browse actors, movies and roles only
	RoleAssistant CastingRole = "assistant"

	// Manages the actor pool and casts roles; may edit but not create movies
	RoleDirector CastingRole = "director"

	// Unrestricted access
	RoleProducer CastingRole = "producer"
)

// Permissions returns the scopes granted to the role, or an error for unknown roles.
func (r CastingRole) Permissions() ([]string, error) {
	switch r {
	case RoleAssistant:
		return []string{}, nil
	case RoleDirector:
		return []string{
			PermPostActors, PermPatchActors, PermDeleteActors,
			PermPatchMovies,
			PermPostRoles, PermPatchRoles, PermDeleteRoles,
		}, nil
	case RoleProducer:
		return []string{
			PermPostActors, PermPatchActors, PermDeleteActors,
			PermPostMovies, PermPatchMovies, PermDeleteMovies,
			PermPostRoles, PermPatchRoles, PermDeleteRoles,
		}, nil
	default:
		return nil, fmt.Errorf("sec: unknown casting role %q", r)
	}
}

package role

// Role represents a part in a movie, optionally cast to an actor.
type Role struct {
	ID          int64   `json:"id"`
	MovieID     int64   `json:"movie_id"`
	ActorID     *int64  `json:"actor_id"`
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	MinAge      int     `json:"min_age"`
	MaxAge      int     `json:"max_age"`
	Description *string `json:"description"`
}

// MovieRole is a role listed under its movie, so movie_id is left out.
type MovieRole struct {
	ID          int64   `json:"id"`
	ActorID     *int64  `json:"actor_id"`
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	MinAge      int     `json:"min_age"`
	MaxAge      int     `json:"max_age"`
	Description *string `json:"description"`
}

// ActorRole is a role listed under its actor, so actor_id is left out.
type ActorRole struct {
	ID          int64   `json:"id"`
	MovieID     int64   `json:"movie_id"`
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	MinAge      int     `json:"min_age"`
	MaxAge      int     `json:"max_age"`
	Description *string `json:"description"`
}

// ForMovie drops the movie reference.
func (r *Role) ForMovie() MovieRole {
	return MovieRole{
		ID: r.ID, ActorID: r.ActorID, Name: r.Name, Gender: r.Gender,
		MinAge: r.MinAge, MaxAge: r.MaxAge, Description: r.Description,
	}
}

// ForActor drops the actor reference.
func (r *Role) ForActor() ActorRole {
	return ActorRole{
		ID: r.ID, MovieID: r.MovieID, Name: r.Name, Gender: r.Gender,
		MinAge: r.MinAge, MaxAge: r.MaxAge, Description: r.Description,
	}
}

// Global field names for validation
const (
	FieldMovieID     = "movie_id"
	FieldActorID     = "actor_id"
	FieldName        = "name"
	FieldGender      = "gender"
	FieldMinAge      = "min_age"
	FieldMaxAge      = "max_age"
	FieldDescription = "description"
)

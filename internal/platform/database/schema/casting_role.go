package schema

// CastingRoleTable represents the 'roles' table
type CastingRoleTable struct {
	Table       string
	ID          string
	MovieID     string
	ActorID     string
	Name        string
	Gender      string
	MinAge      string
	MaxAge      string
	Description string
}

// CastingRole is the schema definition for roles
var CastingRole = CastingRoleTable{
	Table:       "roles",
	ID:          "id",
	MovieID:     "movie_id",
	ActorID:     "actor_id",
	Name:        "name",
	Gender:      "gender",
	MinAge:      "min_age",
	MaxAge:      "max_age",
	Description: "description",
}

// Definition returns the typed column list in table order.
func (t CastingRoleTable) Definition() Table {
	return Table{
		Name: t.Table,
		Columns: []Column{
			{Name: t.ID, Type: TypeBigint},
			{Name: t.MovieID, Type: TypeBigint},
			{Name: t.ActorID, Type: TypeBigint},
			{Name: t.Name, Type: TypeText},
			{Name: t.Gender, Type: "gender", Enum: true},
			{Name: t.MinAge, Type: TypeInteger},
			{Name: t.MaxAge, Type: TypeInteger},
			{Name: t.Description, Type: TypeText},
		},
	}
}

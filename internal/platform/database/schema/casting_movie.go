package schema

// CastingMovieTable represents the 'movies' table
type CastingMovieTable struct {
	Table       string
	ID          string
	Title       string
	ReleaseDate string
	Company     string
	Description string
}

// CastingMovie is the schema definition for movies
var CastingMovie = CastingMovieTable{
	Table:       "movies",
	ID:          "id",
	Title:       "title",
	ReleaseDate: "release_date",
	Company:     "company",
	Description: "description",
}

// Definition returns the typed column list in table order.
func (t CastingMovieTable) Definition() Table {
	return Table{
		Name: t.Table,
		Columns: []Column{
			{Name: t.ID, Type: TypeBigint},
			{Name: t.Title, Type: TypeText},
			{Name: t.ReleaseDate, Type: TypeDate},
			{Name: t.Company, Type: TypeText},
			{Name: t.Description, Type: TypeText},
		},
	}
}

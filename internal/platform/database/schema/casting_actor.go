package schema

// CastingActorTable represents the 'actors' table
type CastingActorTable struct {
	Table         string
	ID            string
	Name          string
	Age           string
	Gender        string
	Location      string
	Passport      string
	DriverLicense string
	Ethnicity     string
	HairColor     string
	EyeColor      string
	BodyType      string
	Height        string
	Description   string
	ImageLink     string
	Phone         string
	Email         string
}

// CastingActor is the schema definition for actors
var CastingActor = CastingActorTable{
	Table:         "actors",
	ID:            "id",
	Name:          "name",
	Age:           "age",
	Gender:        "gender",
	Location:      "location",
	Passport:      "passport",
	DriverLicense: "driver_license",
	Ethnicity:     "ethnicity",
	HairColor:     "hair_color",
	EyeColor:      "eye_color",
	BodyType:      "body_type",
	Height:        "height",
	Description:   "description",
	ImageLink:     "image_link",
	Phone:         "phone",
	Email:         "email",
}

// Definition returns the typed column list in table order.
func (t CastingActorTable) Definition() Table {
	return Table{
		Name: t.Table,
		Columns: []Column{
			{Name: t.ID, Type: TypeBigint},
			{Name: t.Name, Type: TypeText},
			{Name: t.Age, Type: TypeInteger},
			{Name: t.Gender, Type: "gender", Enum: true},
			{Name: t.Location, Type: TypeText},
			{Name: t.Passport, Type: TypeBoolean},
			{Name: t.DriverLicense, Type: TypeBoolean},
			{Name: t.Ethnicity, Type: "ethnicity", Enum: true},
			{Name: t.HairColor, Type: "hair_color", Enum: true},
			{Name: t.EyeColor, Type: "eye_color", Enum: true},
			{Name: t.BodyType, Type: "body_type", Enum: true},
			{Name: t.Height, Type: TypeInteger},
			{Name: t.Description, Type: TypeText},
			{Name: t.ImageLink, Type: TypeText},
			{Name: t.Phone, Type: TypeText},
			{Name: t.Email, Type: TypeText},
		},
	}
}

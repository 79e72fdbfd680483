package actor

// Actor represents a performer available for casting.
type Actor struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Location      string  `json:"location"`
	Passport      bool    `json:"passport"`
	DriverLicense bool    `json:"driver_license"`
	Ethnicity     *string `json:"ethnicity"`
	HairColor     *string `json:"hair_color"`
	EyeColor      *string `json:"eye_color"`
	BodyType      *string `json:"body_type"`
	Height        *int    `json:"height"`
	Description   *string `json:"description"`
	ImageLink     *string `json:"image_link"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
}

// Global field names for validation
const (
	FieldName          = "name"
	FieldAge           = "age"
	FieldGender        = "gender"
	FieldLocation      = "location"
	FieldPassport      = "passport"
	FieldDriverLicense = "driver_license"
	FieldEthnicity     = "ethnicity"
	FieldHairColor     = "hair_color"
	FieldEyeColor      = "eye_color"
	FieldBodyType      = "body_type"
	FieldHeight        = "height"
	FieldDescription   = "description"
	FieldImageLink     = "image_link"
	FieldPhone         = "phone"
	FieldEmail         = "email"
)

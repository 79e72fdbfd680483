// Package enum holds the fixed value sets used by actor and role attributes.
//
// The sets mirror the Postgres enum types created by the initial migration;
// both must change together.
package enum

// Gender is shared by actors and the roles they are cast in.
var Gender = []string{"male", "female"}

// Ethnicity values accepted for an actor profile.
var Ethnicity = []string{
	"asian",
	"black",
	"latino",
	"middle eastern",
	"south asian",
	"southeast asian",
	"white",
}

// HairColor values accepted for an actor profile.
var HairColor = []string{
	"black",
	"brown",
	"blond",
	"auburn",
	"chestnut",
	"red",
	"gray",
	"white",
	"bald",
}

// EyeColor values accepted for an actor profile.
var EyeColor = []string{
	"amber",
	"blue",
	"brown",
	"gray",
	"green",
	"hazel",
	"red",
	"violet",
}

// BodyType values accepted for an actor profile.
var BodyType = []string{
	"average",
	"slim",
	"athletic",
	"muscular",
	"curvy",
	"heavyset",
	"plus-sized",
}

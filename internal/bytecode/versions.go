package bytecode

// Classfile version identifiers as they appear in the class file format.
// V1_1 carries a minor version in its upper 16 bits, matching the value
// emitted by the 1.1 compilers; later releases use the bare major number.
const (
	V1_1 = 3<<16 | 45
	V1_2 = 46
	V1_3 = 47
	V1_4 = 48
	V1_5 = 49
	V1_6 = 50
	V1_7 = 51
)

// DefaultVersion is the version targeted when the caller does not ask for a
// specific one.
const DefaultVersion = V1_7

// UnknownVersionName is returned by VersionName for identifiers the table
// does not cover.
const UnknownVersionName = "unknown version"

// versionNames covers the officially named releases plus the one release
// after the last named identifier, which at the time of writing has no
// identifier of its own yet.
var versionNames = map[int]string{
	V1_1:     "Java 1.1",
	V1_2:     "Java 1.2",
	V1_3:     "Java 1.3",
	V1_4:     "Java 1.4",
	V1_5:     "Java 5",
	V1_6:     "Java 6",
	V1_7:     "Java 7",
	V1_7 + 1: "Java 8",
}

// VersionName returns the platform name for a classfile version identifier.
// It is total: unmapped identifiers yield UnknownVersionName rather than an
// error.
func VersionName(version int) string {
	if name, ok := versionNames[version]; ok {
		return name
	}
	return UnknownVersionName
}

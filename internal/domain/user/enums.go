package user

import "fmt"

// Role is the closed set of account roles.
type Role string

const (
	RoleSuper        Role = "super"
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleAssistant    Role = "assistant"
	RoleProfessional Role = "professional"
	RoleClient       Role = "client"
	RoleTutor        Role = "tutor"
)

var validRoles = []Role{
	RoleSuper,
	RoleAdmin,
	RoleManager,
	RoleAssistant,
	RoleProfessional,
	RoleClient,
	RoleTutor,
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}

// DocumentType is the closed set of accepted identification documents.
type DocumentType string

const (
	DocumentTypeDriveLicense DocumentType = "drive_license"
	DocumentTypePersonalID   DocumentType = "personal_id"
	DocumentTypePassport     DocumentType = "passport"
)

var validDocumentTypes = []DocumentType{
	DocumentTypeDriveLicense,
	DocumentTypePersonalID,
	DocumentTypePassport,
}

func (d DocumentType) String() string { return string(d) }

func (d DocumentType) IsValid() bool {
	for _, candidate := range validDocumentTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

func ParseDocumentType(value string) (DocumentType, error) {
	for _, candidate := range validDocumentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid document type %q", value)
}

// Gender is the closed set of gender options.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

var validGenders = []Gender{
	GenderMale,
	GenderFemale,
	GenderOther,
	GenderPreferNotToSay,
}

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	for _, candidate := range validGenders {
		if candidate == g {
			return true
		}
	}
	return false
}

func ParseGender(value string) (Gender, error) {
	for _, candidate := range validGenders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid gender %q", value)
}

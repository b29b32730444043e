package validator

import (
	"errors"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	addressDomain "profile-manager-api/internal/domain/address"
	"profile-manager-api/internal/domain/user"
	addressDTO "profile-manager-api/internal/interface/api/rest/dto/address"
	"profile-manager-api/internal/interface/api/rest/dto/profile"
	"profile-manager-api/pkg/geo"
)

const (
	minNameLen = 2
	maxNameLen = 120

	minDocumentIDLen = 3
	maxDocumentIDLen = 64

	adultAge = 18

	dateLayout = "2006-01-02"
)

var (
	// Normalized phones are "+" followed by 10-15 digits, no leading zero.
	phoneRe = regexp.MustCompile(`^\+[1-9]\d{9,14}$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// NormalizePhone strips the usual separators; validation runs on the result
// so "+55 (11) 91234-5678" and "+5511912345678" are the same number.
func NormalizePhone(s string) string {
	return phoneSeparators.Replace(strings.TrimSpace(s))
}

// NormalizeName applies Unicode NFC and trims the edges, so the same name
// typed with combining characters compares equal.
func NormalizeName(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

func ValidateOffsetLimit(offsetStr, limitStr string, maxPageSize int) (int, int, error) {
	offset := 0
	if offsetStr != "" {
		n, err := strconv.Atoi(offsetStr)
		if err != nil || n < 0 {
			return 0, 0, errors.New("offset must be a non-negative integer")
		}
		offset = n
	}

	limit := maxPageSize
	if limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			return 0, 0, errors.New("limit must be a positive integer")
		}
		if n > maxPageSize {
			n = maxPageSize
		}
		limit = n
	}

	return offset, limit, nil
}

func ValidateNearbyQuery(latStr, lngStr, radiusStr string) (geo.Point, float64, error) {
	if latStr == "" || lngStr == "" || radiusStr == "" {
		return geo.Point{}, 0, errors.New("lat, lng and radius_km are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return geo.Point{}, 0, errors.New("lat must be a number")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return geo.Point{}, 0, errors.New("lng must be a number")
	}
	radius, err := strconv.ParseFloat(radiusStr, 64)
	if err != nil || radius < 0 {
		return geo.Point{}, 0, errors.New("radius_km must be a non-negative number")
	}

	p := geo.Point{Lat: lat, Lng: lng}
	if !p.Valid() {
		return geo.Point{}, 0, errors.New("lat must be within [-90, 90] and lng within [-180, 180]")
	}

	return p, radius, nil
}

func ValidateUserSearch(query url.Values, maxPageSize int) (user.SearchFilter, map[string]string) {
	errs := make(map[string]string)
	var filter user.SearchFilter

	filter.Text = strings.TrimSpace(query.Get("q"))
	filter.City = strings.TrimSpace(query.Get("city"))
	filter.State = strings.TrimSpace(query.Get("state"))
	filter.Country = strings.TrimSpace(query.Get("country"))

	if v := query.Get("role"); v != "" {
		if parsed, err := user.ParseRole(v); err != nil {
			errs["role"] = err.Error()
		} else {
			filter.Role = &parsed
		}
	}
	if v := query.Get("document_type"); v != "" {
		if parsed, err := user.ParseDocumentType(v); err != nil {
			errs["document_type"] = err.Error()
		} else {
			filter.DocumentType = &parsed
		}
	}
	if v := query.Get("gender"); v != "" {
		if parsed, err := user.ParseGender(v); err != nil {
			errs["gender"] = err.Error()
		} else {
			filter.Gender = &parsed
		}
	}
	if v := query.Get("profile_completed"); v != "" {
		if parsed, err := strconv.ParseBool(v); err != nil {
			errs["profile_completed"] = "profile_completed must be a boolean"
		} else {
			filter.ProfileCompleted = &parsed
		}
	}
	if v := query.Get("has_address"); v != "" {
		if parsed, err := strconv.ParseBool(v); err != nil {
			errs["has_address"] = "has_address must be a boolean"
		} else {
			filter.HasAddress = &parsed
		}
	}
	if v := query.Get("include_deleted"); v != "" {
		if parsed, err := strconv.ParseBool(v); err != nil {
			errs["include_deleted"] = "include_deleted must be a boolean"
		} else {
			filter.IncludeDeleted = parsed
		}
	}

	offset, limit, err := ValidateOffsetLimit(query.Get("offset"), query.Get("limit"), maxPageSize)
	if err != nil {
		errs["offset"] = err.Error()
	}
	filter.Offset = offset
	filter.Limit = limit

	if len(errs) == 0 {
		return filter, nil
	}

	return user.SearchFilter{}, errs
}

func ValidateRegister(r profile.RegisterRequest) (string, string, user.Role, map[string]string) {
	errs := make(map[string]string)

	identityKey := strings.TrimSpace(r.IdentityKey)
	email := strings.ToLower(strings.TrimSpace(r.Email))

	if identityKey == "" {
		errs["identity_key"] = "identity_key is required"
	}
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	role := user.RoleClient
	if r.Role != nil {
		parsed, err := user.ParseRole(strings.TrimSpace(*r.Role))
		if err != nil {
			errs["role"] = err.Error()
		} else {
			role = parsed
		}
	}

	if len(errs) == 0 {
		return identityKey, email, role, nil
	}

	return "", "", "", errs
}

func ValidateProfileCreate(r profile.CreateRequest, now time.Time) (user.ProfileInput, map[string]string) {
	errs := make(map[string]string)
	var in user.ProfileInput

	in.FullName = checkFullName(r.FullName, errs)

	if dt := strings.TrimSpace(r.DocumentType); dt == "" {
		errs["document_type"] = "document_type is required"
	} else if parsed, err := user.ParseDocumentType(dt); err != nil {
		errs["document_type"] = err.Error()
	} else {
		in.DocumentType = parsed
	}

	in.DocumentID = checkDocumentID(r.DocumentID, errs)

	if dob := strings.TrimSpace(r.DateOfBirth); dob == "" {
		errs["date_of_birth"] = "date_of_birth is required"
	} else if parsed, msg := checkDateOfBirth(dob, now); msg != "" {
		errs["date_of_birth"] = msg
	} else {
		in.DateOfBirth = parsed
	}

	if g := strings.TrimSpace(r.Gender); g == "" {
		errs["gender"] = "gender is required"
	} else if parsed, err := user.ParseGender(g); err != nil {
		errs["gender"] = err.Error()
	} else {
		in.Gender = parsed
	}

	in.PhoneNumber = checkPhone(r.PhoneNumber, errs)

	if r.SecondaryEmail != nil {
		if email, msg := checkSecondaryEmail(*r.SecondaryEmail); msg != "" {
			errs["secondary_email"] = msg
		} else {
			in.SecondaryEmail = &email
		}
	}

	if r.AddressID != nil {
		ok, id := IsUUID(strings.TrimSpace(*r.AddressID))
		if !ok {
			errs["address_id"] = "address_id must be a valid UUID"
		} else {
			in.AddressID = &id
		}
	}

	if len(errs) == 0 {
		return in, nil
	}

	return user.ProfileInput{}, errs
}

func ValidateProfileUpdate(r profile.UpdateRequest, now time.Time) (user.ProfileUpdate, map[string]string) {
	errs := make(map[string]string)
	var in user.ProfileUpdate

	if r.FullName != nil {
		name := checkFullName(*r.FullName, errs)
		in.FullName = &name
	}
	if r.DocumentType != nil {
		if parsed, err := user.ParseDocumentType(strings.TrimSpace(*r.DocumentType)); err != nil {
			errs["document_type"] = err.Error()
		} else {
			in.DocumentType = &parsed
		}
	}
	if r.DocumentID != nil {
		id := checkDocumentID(*r.DocumentID, errs)
		in.DocumentID = &id
	}
	if r.DateOfBirth != nil {
		if parsed, msg := checkDateOfBirth(strings.TrimSpace(*r.DateOfBirth), now); msg != "" {
			errs["date_of_birth"] = msg
		} else {
			in.DateOfBirth = &parsed
		}
	}
	if r.Gender != nil {
		if parsed, err := user.ParseGender(strings.TrimSpace(*r.Gender)); err != nil {
			errs["gender"] = err.Error()
		} else {
			in.Gender = &parsed
		}
	}
	if r.PhoneNumber != nil {
		phone := checkPhone(*r.PhoneNumber, errs)
		in.PhoneNumber = &phone
	}
	if r.SecondaryEmail != nil {
		if email, msg := checkSecondaryEmail(*r.SecondaryEmail); msg != "" {
			errs["secondary_email"] = msg
		} else {
			in.SecondaryEmail = &email
		}
	}
	if r.AddressID != nil {
		// An explicit empty address_id detaches the reference.
		if trimmed := strings.TrimSpace(*r.AddressID); trimmed == "" {
			in.DetachAddress = true
		} else if ok, id := IsUUID(trimmed); !ok {
			errs["address_id"] = "address_id must be a valid UUID"
		} else {
			in.AddressID = &id
		}
	}

	if len(errs) == 0 {
		return in, nil
	}

	return user.ProfileUpdate{}, errs
}

func checkFullName(raw string, errs map[string]string) string {
	name := NormalizeName(raw)
	if name == "" {
		errs["full_name"] = "full_name is required"
	} else if l := utf8.RuneCountInString(name); l < minNameLen || l > maxNameLen {
		errs["full_name"] = "full_name length must be 2–120 characters"
	} else if !isHumanName(name) {
		errs["full_name"] = "allowed characters: letters, space, '-', '''"
	}
	return name
}

func checkDocumentID(raw string, errs map[string]string) string {
	id := strings.TrimSpace(raw)
	if id == "" {
		errs["document_id"] = "document_id is required"
	} else if l := utf8.RuneCountInString(id); l < minDocumentIDLen || l > maxDocumentIDLen {
		errs["document_id"] = "document_id length must be 3–64 characters"
	}
	return id
}

func checkPhone(raw string, errs map[string]string) string {
	phone := NormalizePhone(raw)
	if phone == "" {
		errs["phone_number"] = "phone_number is required"
	} else if !phoneRe.MatchString(phone) {
		errs["phone_number"] = "must be '+' followed by 10–15 digits (e.g., +5511912345678)"
	}
	return phone
}

func checkDateOfBirth(raw string, now time.Time) (time.Time, string) {
	dob, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, "must be YYYY-MM-DD"
	}
	if dob.After(now) {
		return time.Time{}, "date_of_birth cannot be in the future"
	}
	if dob.After(now.AddDate(-adultAge, 0, 0)) {
		return time.Time{}, "user must be 18+ years old"
	}
	return dob, ""
}

func checkSecondaryEmail(raw string) (string, string) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", "secondary_email must not be empty"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", "invalid email format"
	}
	return email, ""
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}

func ValidateAddress(r addressDTO.Request) (addressDomain.Address, map[string]string) {
	errs := make(map[string]string)

	a := addressDomain.Address{
		Street:       strings.TrimSpace(r.Street),
		Number:       strings.TrimSpace(r.Number),
		Complement:   r.Complement,
		Neighborhood: strings.TrimSpace(r.Neighborhood),
		City:         strings.TrimSpace(r.City),
		State:        strings.TrimSpace(r.State),
		PostalCode:   strings.TrimSpace(r.PostalCode),
		Country:      strings.TrimSpace(r.Country),
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		PlaceID:      r.PlaceID,
	}

	if a.Street == "" {
		errs["street"] = "street is required"
	}
	if a.Number == "" {
		errs["number"] = "number is required"
	}
	if a.Neighborhood == "" {
		errs["neighborhood"] = "neighborhood is required"
	}
	if a.City == "" {
		errs["city"] = "city is required"
	}
	if a.State == "" {
		errs["state"] = "state is required"
	}
	if a.PostalCode == "" {
		errs["postal_code"] = "postal_code is required"
	}

	checkCoordinates(a.Latitude, a.Longitude, errs)

	if len(errs) == 0 {
		return a, nil
	}

	return addressDomain.Address{}, errs
}

func ValidateAddressUpdate(r addressDTO.UpdateRequest) (addressDomain.Update, map[string]string) {
	errs := make(map[string]string)

	in := addressDTO.ToDomainUpdate(r)

	checkRequiredField := func(field string, v *string) *string {
		if v == nil {
			return nil
		}
		trimmed := strings.TrimSpace(*v)
		if trimmed == "" {
			errs[field] = field + " must not be empty"
		}
		return &trimmed
	}

	in.Street = checkRequiredField("street", in.Street)
	in.Number = checkRequiredField("number", in.Number)
	in.Neighborhood = checkRequiredField("neighborhood", in.Neighborhood)
	in.City = checkRequiredField("city", in.City)
	in.State = checkRequiredField("state", in.State)
	in.PostalCode = checkRequiredField("postal_code", in.PostalCode)
	in.Country = checkRequiredField("country", in.Country)

	// Coordinates travel as a pair; a lone latitude or longitude update is
	// rejected rather than silently mixed with the stored half.
	if (in.Latitude == nil) != (in.Longitude == nil) {
		errs["latitude"] = "latitude and longitude must be provided together"
	} else {
		checkCoordinates(in.Latitude, in.Longitude, errs)
	}

	if len(errs) == 0 {
		return in, nil
	}

	return addressDomain.Update{}, errs
}

func checkCoordinates(lat, lng *float64, errs map[string]string) {
	switch {
	case lat == nil && lng == nil:
		return
	case lat == nil || lng == nil:
		errs["latitude"] = "latitude and longitude must be provided together"
		return
	}

	if !(geo.Point{Lat: *lat, Lng: *lng}).Valid() {
		errs["latitude"] = "latitude must be within [-90, 90] and longitude within [-180, 180]"
	}
}

package validator

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-manager-api/internal/domain/user"
	addressDTO "profile-manager-api/internal/interface/api/rest/dto/address"
	"profile-manager-api/internal/interface/api/rest/dto/profile"
)

var now = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func validCreateRequest() profile.CreateRequest {
	return profile.CreateRequest{
		FullName:     "Maria Silva",
		DocumentType: "passport",
		DocumentID:   "AB123456",
		DateOfBirth:  "1990-04-12",
		Gender:       "female",
		PhoneNumber:  "+55 (11) 91234-5678",
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+5511912345678", "+5511912345678"},
		{"+55 (11) 91234-5678", "+5511912345678"},
		{" +33.6.12.34.56.78 ", "+33612345678"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in))
	}
}

func TestValidateProfileCreate(t *testing.T) {
	t.Run("valid payload normalizes phone and parses enums", func(t *testing.T) {
		in, errs := ValidateProfileCreate(validCreateRequest(), now)
		require.Nil(t, errs)
		assert.Equal(t, "+5511912345678", in.PhoneNumber)
		assert.Equal(t, user.DocumentTypePassport, in.DocumentType)
		assert.Equal(t, user.GenderFemale, in.Gender)
		assert.Equal(t, 1990, in.DateOfBirth.Year())
	})

	t.Run("missing fields are reported per field", func(t *testing.T) {
		_, errs := ValidateProfileCreate(profile.CreateRequest{}, now)
		require.NotNil(t, errs)
		for _, field := range []string{
			"full_name", "document_type", "document_id",
			"date_of_birth", "gender", "phone_number",
		} {
			assert.Contains(t, errs, field)
		}
	})

	t.Run("invalid enum is not reported as missing", func(t *testing.T) {
		req := validCreateRequest()
		req.DocumentType = "voter_card"
		_, errs := ValidateProfileCreate(req, now)
		require.NotNil(t, errs)
		assert.Contains(t, errs["document_type"], "invalid document type")
	})

	tests := []struct {
		name   string
		mutate func(r *profile.CreateRequest)
		field  string
	}{
		{"future date of birth", func(r *profile.CreateRequest) { r.DateOfBirth = "2030-01-01" }, "date_of_birth"},
		{"under 18", func(r *profile.CreateRequest) { r.DateOfBirth = "2010-01-01" }, "date_of_birth"},
		{"bad date layout", func(r *profile.CreateRequest) { r.DateOfBirth = "12/04/1990" }, "date_of_birth"},
		{"phone too short", func(r *profile.CreateRequest) { r.PhoneNumber = "+551191" }, "phone_number"},
		{"phone without plus", func(r *profile.CreateRequest) { r.PhoneNumber = "5511912345678" }, "phone_number"},
		{"bad secondary email", func(r *profile.CreateRequest) { r.SecondaryEmail = strPtr("nope") }, "secondary_email"},
		{"bad address id", func(r *profile.CreateRequest) { r.AddressID = strPtr("not-a-uuid") }, "address_id"},
		{"name too short", func(r *profile.CreateRequest) { r.FullName = "M" }, "full_name"},
		{"name with digits", func(r *profile.CreateRequest) { r.FullName = "Maria 2" }, "full_name"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			_, errs := ValidateProfileCreate(req, now)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateProfileUpdate(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		in, errs := ValidateProfileUpdate(profile.UpdateRequest{}, now)
		require.Nil(t, errs)
		assert.Nil(t, in.FullName)
		assert.Nil(t, in.PhoneNumber)
		assert.False(t, in.DetachAddress)
	})

	t.Run("empty address id detaches", func(t *testing.T) {
		in, errs := ValidateProfileUpdate(profile.UpdateRequest{AddressID: strPtr("")}, now)
		require.Nil(t, errs)
		assert.True(t, in.DetachAddress)
		assert.Nil(t, in.AddressID)
	})

	t.Run("present fields are validated like on create", func(t *testing.T) {
		_, errs := ValidateProfileUpdate(profile.UpdateRequest{
			PhoneNumber: strPtr("12345"),
			DateOfBirth: strPtr("2030-01-01"),
		}, now)
		require.NotNil(t, errs)
		assert.Contains(t, errs, "phone_number")
		assert.Contains(t, errs, "date_of_birth")
	})
}

func TestValidateRegister(t *testing.T) {
	t.Run("defaults the role to client", func(t *testing.T) {
		identityKey, email, role, errs := ValidateRegister(profile.RegisterRequest{
			IdentityKey: "idp|abc",
			Email:       "Maria@Example.com",
		})
		require.Nil(t, errs)
		assert.Equal(t, "idp|abc", identityKey)
		assert.Equal(t, "maria@example.com", email)
		assert.Equal(t, user.RoleClient, role)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, _, _, errs := ValidateRegister(profile.RegisterRequest{
			IdentityKey: "idp|abc",
			Email:       "maria@example.com",
			Role:        strPtr("root"),
		})
		require.NotNil(t, errs)
		assert.Contains(t, errs, "role")
	})
}

func TestValidateNearbyQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, radius, err := ValidateNearbyQuery("-23.5505", "-46.6333", "10")
		require.NoError(t, err)
		assert.InDelta(t, -23.5505, p.Lat, 1e-9)
		assert.Equal(t, 10.0, radius)
	})

	tests := []struct {
		name             string
		lat, lng, radius string
	}{
		{"missing lat", "", "-46.6", "10"},
		{"missing radius", "-23.5", "-46.6", ""},
		{"lat out of range", "91", "-46.6", "10"},
		{"lng out of range", "-23.5", "181", "10"},
		{"negative radius", "-23.5", "-46.6", "-1"},
		{"non-numeric", "abc", "-46.6", "10"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ValidateNearbyQuery(tt.lat, tt.lng, tt.radius)
			require.Error(t, err)
		})
	}
}

func TestValidateOffsetLimit(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		offset, limit, err := ValidateOffsetLimit("", "", 100)
		require.NoError(t, err)
		assert.Equal(t, 0, offset)
		assert.Equal(t, 100, limit)
	})

	t.Run("limit is capped at the page size", func(t *testing.T) {
		_, limit, err := ValidateOffsetLimit("0", "500", 100)
		require.NoError(t, err)
		assert.Equal(t, 100, limit)
	})

	t.Run("negative offset rejected", func(t *testing.T) {
		_, _, err := ValidateOffsetLimit("-1", "10", 100)
		require.Error(t, err)
	})
}

func TestValidateUserSearch(t *testing.T) {
	t.Run("parses every predicate", func(t *testing.T) {
		q := url.Values{}
		q.Set("q", "silva")
		q.Set("role", "client")
		q.Set("profile_completed", "true")
		q.Set("gender", "female")
		q.Set("city", "Campinas")
		q.Set("has_address", "true")
		q.Set("include_deleted", "true")
		q.Set("offset", "20")
		q.Set("limit", "10")

		filter, errs := ValidateUserSearch(q, 100)
		require.Nil(t, errs)
		assert.Equal(t, "silva", filter.Text)
		require.NotNil(t, filter.Role)
		assert.Equal(t, user.RoleClient, *filter.Role)
		require.NotNil(t, filter.ProfileCompleted)
		assert.True(t, *filter.ProfileCompleted)
		assert.Equal(t, "Campinas", filter.City)
		require.NotNil(t, filter.HasAddress)
		assert.True(t, filter.IncludeDeleted)
		assert.Equal(t, 20, filter.Offset)
		assert.Equal(t, 10, filter.Limit)
	})

	t.Run("invalid enum reports the field", func(t *testing.T) {
		q := url.Values{}
		q.Set("role", "root")
		_, errs := ValidateUserSearch(q, 100)
		require.NotNil(t, errs)
		assert.Contains(t, errs, "role")
	})
}

func TestValidateAddress(t *testing.T) {
	validReq := func() addressDTO.Request {
		lat, lng := -23.5505, -46.6333
		return addressDTO.Request{
			Street:       "Av. Paulista",
			Number:       "1578",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
			PostalCode:   "01310-200",
			Country:      "Brasil",
			Latitude:     &lat,
			Longitude:    &lng,
		}
	}

	t.Run("valid", func(t *testing.T) {
		a, errs := ValidateAddress(validReq())
		require.Nil(t, errs)
		assert.Equal(t, "Av. Paulista", a.Street)
		assert.True(t, a.HasCoordinates())
	})

	t.Run("coordinates must travel together", func(t *testing.T) {
		req := validReq()
		req.Longitude = nil
		_, errs := ValidateAddress(req)
		require.NotNil(t, errs)
		assert.Contains(t, errs, "latitude")
	})

	t.Run("out-of-range latitude", func(t *testing.T) {
		req := validReq()
		bad := 95.0
		req.Latitude = &bad
		_, errs := ValidateAddress(req)
		require.NotNil(t, errs)
		assert.Contains(t, errs, "latitude")
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, errs := ValidateAddress(addressDTO.Request{})
		require.NotNil(t, errs)
		for _, field := range []string{"street", "number", "neighborhood", "city", "state", "postal_code"} {
			assert.Contains(t, errs, field)
		}
		// country is defaulted downstream, never required here
		assert.NotContains(t, errs, "country")
	})
}

func TestValidateAddressUpdate(t *testing.T) {
	t.Run("lone coordinate update rejected", func(t *testing.T) {
		lat := -23.5
		_, errs := ValidateAddressUpdate(addressDTO.UpdateRequest{Latitude: &lat})
		require.NotNil(t, errs)
		assert.Contains(t, errs, "latitude")
	})

	t.Run("required field cannot be blanked", func(t *testing.T) {
		_, errs := ValidateAddressUpdate(addressDTO.UpdateRequest{Street: strPtr("  ")})
		require.NotNil(t, errs)
		assert.Contains(t, errs, "street")
	})

	t.Run("partial update passes through", func(t *testing.T) {
		in, errs := ValidateAddressUpdate(addressDTO.UpdateRequest{City: strPtr("Campinas")})
		require.Nil(t, errs)
		require.NotNil(t, in.City)
		assert.Equal(t, "Campinas", *in.City)
		assert.Nil(t, in.Street)
	})
}

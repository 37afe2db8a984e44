// Package nationalid parses and validates Egyptian national ID numbers.
//
// An ID is 14 digits laid out as c yymmdd gg ssss z: a birth century
// code, the date of birth, a birth governorate code, the birth sequence
// number (whose last digit also encodes gender), and a check digit the
// Ministry of Interior assigns. The check digit is carried through but
// never verified.
package nationalid

import (
	"fmt"
	"time"
)

// Length is the exact number of digits in a national ID.
const Length = 14

// Gender is decoded from the parity of the gender digit.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Field identifies which part of an ID failed validation.
type Field string

const (
	FieldInput       Field = "input"
	FieldCentury     Field = "century"
	FieldDate        Field = "date"
	FieldGovernorate Field = "governorate"
	FieldGender      Field = "gender"
)

// ValidationError reports the first field that failed validation,
// together with the offending slice of the input.
type ValidationError struct {
	Field  Field
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("national id: invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Record holds the decoded fields of a valid national ID. Values are
// never partially populated: Parse returns either a complete Record or
// a ValidationError.
type Record struct {
	BirthCentury    int       `json:"birth_century"`
	DateOfBirth     time.Time `json:"date_of_birth"`
	GovernorateCode string    `json:"governorate_code"`
	Governorate     string    `json:"governorate"`
	Sequence        string    `json:"sequence_in_computer"`
	Gender          Gender    `json:"gender"`
	CheckDigit      string    `json:"check_digit"`
}

// Digits reconstructs the original 14-digit string from the record.
func (r Record) Digits() string {
	return fmt.Sprintf("%d%02d%02d%02d%s%s%s",
		r.BirthCentury-18,
		r.DateOfBirth.Year()%100,
		int(r.DateOfBirth.Month()),
		r.DateOfBirth.Day(),
		r.GovernorateCode,
		r.Sequence,
		r.CheckDigit,
	)
}

// minBirthDate is the earliest date of birth an ID can encode.
var minBirthDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Parse decodes and validates a 14-digit national ID. The now argument
// bounds the century and date-of-birth checks; callers outside tests
// pass time.Now(). Validation is fail-fast: the first bad field wins,
// checked in order input, century, date, governorate, gender.
func Parse(id string, now time.Time) (Record, error) {
	if len(id) != Length {
		return Record{}, &ValidationError{
			Field:  FieldInput,
			Value:  id,
			Reason: fmt.Sprintf("must be %d digits, got %d characters", Length, len(id)),
		}
	}
	for i := 0; i < Length; i++ {
		if id[i] < '0' || id[i] > '9' {
			return Record{}, &ValidationError{
				Field:  FieldInput,
				Value:  id,
				Reason: fmt.Sprintf("non-digit character at position %d", i+1),
			}
		}
	}

	century := digit(id, 0) + 18
	if current := centuryOf(now.Year()); century < 19 || century > current {
		return Record{}, &ValidationError{
			Field:  FieldCentury,
			Value:  id[:1],
			Reason: fmt.Sprintf("century %d outside 19..%d", century, current),
		}
	}

	year := (century-1)*100 + digit(id, 1)*10 + digit(id, 2)
	month := digit(id, 3)*10 + digit(id, 4)
	day := digit(id, 5)*10 + digit(id, 6)

	dob := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components, so month 13 or
	// day 32 comes back as a different date
	if dob.Year() != year || int(dob.Month()) != month || dob.Day() != day {
		return Record{}, &ValidationError{
			Field:  FieldDate,
			Value:  id[1:7],
			Reason: fmt.Sprintf("%04d-%02d-%02d is not a real calendar date", year, month, day),
		}
	}
	if dob.Before(minBirthDate) || dob.After(now) {
		return Record{}, &ValidationError{
			Field:  FieldDate,
			Value:  id[1:7],
			Reason: fmt.Sprintf("date of birth %s outside 1900-01-01..%s", dob.Format("2006-01-02"), now.Format("2006-01-02")),
		}
	}

	code := id[7:9]
	name, ok := GovernorateName(code)
	if !ok {
		return Record{}, &ValidationError{
			Field:  FieldGovernorate,
			Value:  code,
			Reason: "unknown governorate code",
		}
	}

	// sequence is opaque; its last digit doubles as the gender digit
	seq := id[9:13]
	genderDigit := digit(id, 12)
	if genderDigit == 0 {
		return Record{}, &ValidationError{
			Field:  FieldGender,
			Value:  id[12:13],
			Reason: "gender digit must be 1-9",
		}
	}
	gender := Male
	if genderDigit%2 == 0 {
		gender = Female
	}

	return Record{
		BirthCentury:    century,
		DateOfBirth:     dob,
		GovernorateCode: code,
		Governorate:     name,
		Sequence:        seq,
		Gender:          gender,
		CheckDigit:      id[13:],
	}, nil
}

// centuryOf returns the century a year belongs to, e.g. 2026 -> 21.
func centuryOf(year int) int {
	return year/100 + 1
}

func digit(id string, i int) int {
	return int(id[i] - '0')
}

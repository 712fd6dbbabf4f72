// Package predicate provides ready-made checks for fieldcheck.Validator.Validate.
//
// Every function here is a plain, pure predicate (or returns one). None of
// them panic, so they can be combined freely inside caller-supplied closures:
//
//	fieldcheck.Of(user).
//		Validate("email", "must be a valid email address", func(u *User) bool {
//			return predicate.Email(u.Email)
//		}).
//		Validate("password", "must be at least 8 characters long", func(u *User) bool {
//			return predicate.MinLen(8)(u.Password)
//		})
//
// Format checks (Email, URL, UUID, Phone, Alphanumeric, LanguageTag) reject
// blank input.
// Length checks count runes, not bytes.
package predicate

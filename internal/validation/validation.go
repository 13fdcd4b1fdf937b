// Package validation contains the request decoding helpers shared by
// every handler.
//
// Decoding is lenient about *which* fields are present
// (unknown ones are ignored, missing ones stay nil) and strict about
// the payload being decodable at all. Business rules live in the form
// package, not here.
package validation

// Package header reads message headers on top of the field scanners. Parse
// walks the header one field at a time: it recognizes the field name, then
// lets field.ParseRaw pull out the raw body, or field.SkipRaw pass over it for
// fields the caller does not care about. The fields are kept in order with
// their original bytes, so a parsed header writes back out unchanged.
//
// The Header getters add the higher-level interpretation: decoding of MIME
// encoded-words, date parsing, and address list parsing.
package header

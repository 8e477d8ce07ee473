// Package hts implements the HTS code pattern language.
//
// An HTS code has four dot-separated sections of 4, 2, 2 and 2 digit
// positions. A pattern section is a sequence of tokens:
//
//   - a digit 0-9
//   - a range {x-y}, one digit between x and y inclusive
//   - the wildcard %d, exactly one digit
//   - a lone *, every digit position of the section
//
// [Compile] turns a pattern into an anchored matcher, [CheckCode] validates
// the grammar of a code without compiling it, and [AutoFormat] is the
// lenient live-typing formatter that never rejects input.
//
//	p, _ := hts.Compile("12{3-5}%d.*.34.56")
//	p.Match("1248.99.34.56") // true
package hts

// Package cardapi exposes the card network classifier over HTTP.
//
// Routes:
//
//	POST /v1/cards/check      classify, validate, format and mask a number
//	POST /v1/cards/validate   validate a number against a named network
//	GET  /v1/cards/format     group a number for display
//	GET  /v1/networks         the network table in evaluation order
//	GET  /v1/networks/{name}  one row of the table
//
// Every response uses the handler JSON envelope. Card numbers only reach the
// logs masked.
package cardapi

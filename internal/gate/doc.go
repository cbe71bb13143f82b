// Package gate enforces the access policy of the API and answers violations
// with catalogue errors: protocol (E14), origin (E12), credentials (E10),
// environment (E13), disabled service (E16), endpoint (E15) and rate
// limit (E19).
package gate

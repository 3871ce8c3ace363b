// Package loader reads the CSV files a session's Camper and Counselor
// records arrive in and builds model.Camper / model.Counselor values from
// them. It is intentionally thin: CSV ingestion is treated as an external
// collaborator the solver, rbl, staffing, and scoring packages never
// import.
package loader

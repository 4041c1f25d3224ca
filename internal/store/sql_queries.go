// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Handwritten queries use $N placeholders, which both PostgreSQL and SQLite
// understand. The filtered ledger query is built dynamically in
// repository_access.go instead.
const (
	employeeColumns = `employee_id, first_name, last_name, national_id, birth_date, email,
		role, status, area_id, pin_hash, vector_ciphertext, vector_nonce, registered_at`

	createEmployee = `INSERT INTO employees
		(first_name, last_name, national_id, birth_date, email, role, status, area_id, pin_hash, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING employee_id, registered_at;`

	findEmployeeByID = `SELECT ` + employeeColumns + `
		FROM employees
		WHERE employee_id = $1;`

	findAllEmployees = `SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY employee_id;`

	findEmployeesWithBiometrics = `SELECT ` + employeeColumns + `
		FROM employees
		WHERE status = $1
		  AND vector_ciphertext IS NOT NULL
		  AND vector_nonce IS NOT NULL
		ORDER BY employee_id;`

	findEmployeesWithPIN = `SELECT ` + employeeColumns + `
		FROM employees
		WHERE pin_hash IS NOT NULL
		ORDER BY employee_id;`

	updateEmployeeBiometrics = `UPDATE employees
		SET vector_ciphertext = $1, vector_nonce = $2
		WHERE employee_id = $3;`

	deleteEmployeeAccessRecords = `DELETE FROM access_records
		WHERE employee_id = $1;`

	deleteEmployee = `DELETE FROM employees
		WHERE employee_id = $1;`

	findAreaByID = `SELECT area_id, name, description, status
		FROM areas
		WHERE area_id = $1;`

	findAllAreas = `SELECT area_id, name, description, status
		FROM areas
		ORDER BY area_id;`

	appendAccessRecord = `INSERT INTO access_records
		(employee_id, area_id, occurred_at, kind, method, device, confidence, outcome, reason, reason_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING record_id;`

	findAccessRecordByID = `SELECT record_id, employee_id, area_id, occurred_at, kind, method,
		device, confidence, outcome, reason, reason_code
		FROM access_records
		WHERE record_id = $1;`
)

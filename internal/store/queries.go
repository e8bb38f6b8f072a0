// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// credentialRowID pins the credentials table to a single row: the client
// holds at most one API key at a time.
const credentialRowID = 1

func buildGetCredentialQuery() (string, []any, error) {
	return sq.Select("api_key").
		From("credentials").
		Where(sq.Eq{"id": credentialRowID}).
		ToSql()
}

func buildSetCredentialQuery(value string) (string, []any, error) {
	return sq.Insert("credentials").
		Columns("id", "api_key").
		Values(credentialRowID, value).
		Suffix("ON CONFLICT (id) DO UPDATE SET api_key = excluded.api_key, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildClearCredentialQuery() (string, []any, error) {
	return sq.Delete("credentials").
		Where(sq.Eq{"id": credentialRowID}).
		ToSql()
}

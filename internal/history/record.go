package history

import (
	"database/sql"
	"errors"
	"time"
)

// Record stores one command entered in dir. A repeated (dir, command) pair
// increments its count and refreshes entered_on rather than creating a new
// row. When checksum is valid and equals the stored marker the call is a
// designed no-op reporting recorded=false; otherwise the marker is
// overwritten after the upsert. Callers pass non-empty commands; filtering
// empties and ignored commands happens upstream.
func (s *Store) Record(dir, command string, checksum sql.NullString) (bool, error) {
	return s.RecordAt(dir, command, checksum, time.Now())
}

// RecordAt is Record with an explicit entry time, used by history imports
// to preserve original timestamps.
func (s *Store) RecordAt(dir, command string, checksum sql.NullString, enteredOn time.Time) (bool, error) {
	start := time.Now()
	defer func() { s.stats.recordOperation("Record", time.Since(start)) }()

	if checksum.Valid {
		stored, err := s.readChecksum()
		if err != nil {
			return false, s.classify("record command", err)
		}

		s.log.Debugf("Checksum compare: stored=%q supplied=%q", stored, checksum.String)

		if stored == checksum.String {
			return false, nil
		}
	}

	query := `
		INSERT INTO history (cwd, cmd, count, entered_on)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(cwd, cmd) DO UPDATE SET
			count = count + 1,
			entered_on = excluded.entered_on`

	s.logSQL(query, dir, command, enteredOn.Unix())

	if _, err := s.db.Exec(query, dir, command, enteredOn.Unix()); err != nil {
		return false, s.classify("record command", err)
	}

	if checksum.Valid {
		if err := s.writeChecksum(checksum.String); err != nil {
			return false, s.classify("record command", err)
		}
	}

	return true, nil
}

// readChecksum returns the marker value, or the empty string when the row
// holds NULL or is missing.
func (s *Store) readChecksum() (string, error) {
	query := `SELECT sum FROM checksum LIMIT 1`
	s.logSQL(query)

	var stored sql.NullString

	err := s.db.QueryRow(query).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	return stored.String, nil
}

// writeChecksum overwrites the single marker row, recreating it if the row
// went missing.
func (s *Store) writeChecksum(sum string) error {
	query := `UPDATE checksum SET sum = ?`
	s.logSQL(query, sum)

	result, err := s.db.Exec(query, sum)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		insert := `INSERT INTO checksum (sum) VALUES (?)`
		s.logSQL(insert, sum)

		_, err = s.db.Exec(insert, sum)
	}

	return err
}

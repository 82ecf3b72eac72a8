package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/FluidXR/peripheral/internal/device"
)

// Entry is one recorded operation outcome. The journal never holds device
// state; it only records what each operation reported.
type Entry struct {
	ID         int64
	RunID      string
	DeviceName string
	DeviceKind device.Kind
	Operation  device.Operation
	Status     device.Status
	Reason     device.Reason
	Message    string
	RecordedAt time.Time
}

// Record appends an outcome for the named device.
func (j *DB) Record(runID, deviceName string, kind device.Kind, o device.Outcome) (int64, error) {
	res, err := j.db.Exec(
		`INSERT INTO outcomes (run_id, device_name, device_kind, operation, status, reason, message, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, deviceName, string(kind), string(o.Op), string(o.Status), string(o.Reason), o.String(), time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("record outcome: %w", err)
	}
	return res.LastInsertId()
}

// Run returns the outcomes of one run in the order they were recorded.
func (j *DB) Run(runID string) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT id, run_id, device_name, device_kind, operation, status, reason, message, recorded_at
		 FROM outcomes WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return scanEntries(rows)
}

// Recent returns up to limit outcomes, newest first.
func (j *DB) Recent(limit int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT id, run_id, device_name, device_kind, operation, status, reason, message, recorded_at
		 FROM outcomes ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get recent: %w", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var kind, op, status, reason string
		if err := rows.Scan(&e.ID, &e.RunID, &e.DeviceName, &kind, &op, &status, &reason, &e.Message, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		e.DeviceKind = device.Kind(kind)
		e.Operation = device.Operation(op)
		e.Status = device.Status(status)
		e.Reason = device.Reason(reason)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeviceStats summarizes the journal for one device.
type DeviceStats struct {
	Total    int
	Applied  int
	Declined int
}

// GetDeviceStats returns outcome counts for a device across all runs.
func (j *DB) GetDeviceStats(deviceName string) (DeviceStats, error) {
	var stats DeviceStats
	err := j.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		 FROM outcomes WHERE device_name = ?`,
		string(device.Applied), string(device.Declined), deviceName,
	).Scan(&stats.Total, &stats.Applied, &stats.Declined)
	if err != nil {
		return stats, fmt.Errorf("device stats: %w", err)
	}
	return stats, nil
}

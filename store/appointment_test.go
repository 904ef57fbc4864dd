package store

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

func setupMockStore(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *BloodlinkStore) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	ormDB, err := gorm.Open("postgres", db)
	require.NoError(t, err)

	store := NewBloodlinkStore(ormDB, nil)

	return db, mock, store
}

func TestBookAppointment(t *testing.T) {
	db, mock, store := setupMockStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "donation_appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	appointment, err := store.BookAppointment(schema.Appointment{
		RequestID:       "5ea5b2e7a23d9a3c8d411111",
		UserID:          "account-test-appointment",
		AppointmentDate: "2026-09-20",
		AppointmentTime: "09:00 AM - 10:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), appointment.ID)
	assert.Equal(t, schema.AppointmentStatusPending, appointment.AppointmentStatus)
	assert.Equal(t, schema.DonationStatusPending, appointment.DonationStatus)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestBookAppointmentSlotTaken tests that a unique violation from the
// partial slot index surfaces as ErrSlotUnavailable
func TestBookAppointmentSlotTaken(t *testing.T) {
	db, mock, store := setupMockStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "donation_appointments"`).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	appointment, err := store.BookAppointment(schema.Appointment{
		RequestID:       "5ea5b2e7a23d9a3c8d422222",
		UserID:          "account-test-appointment",
		AppointmentDate: "2026-09-20",
		AppointmentTime: "09:00 AM - 10:00 AM",
	})
	assert.EqualError(t, err, ErrSlotUnavailable.Error())
	assert.Nil(t, appointment)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookedSlots(t *testing.T) {
	db, mock, store := setupMockStore(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "donation_appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"appointment_time"}).
			AddRow("09:00 AM - 10:00 AM").
			AddRow("11:00 AM - 12:00 PM"))

	slots, err := store.BookedSlots("2026-09-21")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM - 10:00 AM", "11:00 AM - 12:00 PM"}, slots)

	// second read comes from the cache, no further query expected
	slots, err = store.BookedSlots("2026-09-21")
	require.NoError(t, err)
	assert.Len(t, slots, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestBookAppointmentInvalidatesSlotCache tests that a booking drops the
// cached slot list for its date
func TestBookAppointmentInvalidatesSlotCache(t *testing.T) {
	db, mock, store := setupMockStore(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "donation_appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"appointment_time"}))

	slots, err := store.BookedSlots("2026-09-22")
	require.NoError(t, err)
	assert.Len(t, slots, 0)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "donation_appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	_, err = store.BookAppointment(schema.Appointment{
		RequestID:       "5ea5b2e7a23d9a3c8d433333",
		UserID:          "account-test-appointment",
		AppointmentDate: "2026-09-22",
		AppointmentTime: "02:00 PM - 03:00 PM",
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "donation_appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"appointment_time"}).
			AddRow("02:00 PM - 03:00 PM"))

	slots, err = store.BookedSlots("2026-09-22")
	require.NoError(t, err)
	assert.Equal(t, []string{"02:00 PM - 03:00 PM"}, slots)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewAppointment(t *testing.T) {
	db, mock, store := setupMockStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "donation_appointments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.ReviewAppointment(1, true)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestReviewAppointmentAlreadyReviewed tests that reviewing a non-pending
// appointment fails
func TestReviewAppointmentAlreadyReviewed(t *testing.T) {
	db, mock, store := setupMockStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "donation_appointments"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := store.ReviewAppointment(1, false)
	assert.EqualError(t, err, ErrNotTransitionable.Error())

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCloseAppointmentNotApproved tests that a donation outcome cannot be
// recorded before the appointment is approved
func TestCloseAppointmentNotApproved(t *testing.T) {
	db, mock, store := setupMockStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "donation_appointments"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := store.CloseAppointment(3, true)
	assert.EqualError(t, err, ErrNotTransitionable.Error())

	assert.NoError(t, mock.ExpectationsWereMet())
}

package store

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

var (
	ErrSlotUnavailable    = fmt.Errorf("the slot has already been booked")
	ErrNotTransitionable  = fmt.Errorf("the appointment is not in a state that allows this change")
	ErrAppointmentMissing = fmt.Errorf("appointment not found")
)

// BookAppointment books a donation slot. The partial unique index on
// (appointment_date, appointment_time) settles concurrent bookings; the
// loser gets ErrSlotUnavailable.
func (s *BloodlinkStore) BookAppointment(appointment schema.Appointment) (*schema.Appointment, error) {
	appointment.AppointmentStatus = schema.AppointmentStatusPending
	appointment.DonationStatus = schema.DonationStatusPending

	if err := s.ormDB.Create(&appointment).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	s.slotCache.Remove(appointment.AppointmentDate)

	return &appointment, nil
}

// BookedSlots lists the slot labels already taken on a date. Rejected
// appointments and cancelled donations do not hold their slot.
func (s *BloodlinkStore) BookedSlots(date string) ([]string, error) {
	if slots, ok := s.slotCache.Get(date); ok {
		return slots, nil
	}

	slots := make([]string, 0)
	if err := s.ormDB.Model(schema.Appointment{}).
		Where("appointment_date = ? AND appointment_status != ? AND donation_status != ?",
			date, schema.AppointmentStatusRejected, schema.DonationStatusCancelled).
		Pluck("appointment_time", &slots).Error; err != nil {
		return nil, err
	}

	s.slotCache.Add(date, slots)

	return slots, nil
}

// ListAppointments returns the appointments booked by an account, newest first
func (s *BloodlinkStore) ListAppointments(accountID string) ([]schema.Appointment, error) {
	appointments := make([]schema.Appointment, 0)
	if err := s.ormDB.
		Where("user_id = ?", accountID).
		Order("created_at desc").
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	return appointments, nil
}

// GetAppointmentByRequest finds the appointment attached to a donor post
func (s *BloodlinkStore) GetAppointmentByRequest(requestID string) (*schema.Appointment, error) {
	var appointment schema.Appointment
	if err := s.ormDB.Where("request_id = ?", requestID).First(&appointment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAppointmentMissing
		}
		return nil, err
	}

	return &appointment, nil
}

// DeleteAppointmentByRequest releases the slot held by a donor post. Used
// when a post submission is rolled back or the post is deleted.
func (s *BloodlinkStore) DeleteAppointmentByRequest(accountID, requestID string) error {
	var appointment schema.Appointment
	if err := s.ormDB.Where("request_id = ? AND user_id = ?", requestID, accountID).
		First(&appointment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	if err := s.ormDB.Delete(&appointment).Error; err != nil {
		return err
	}

	s.slotCache.Remove(appointment.AppointmentDate)

	return nil
}

// ReviewAppointment approves or rejects a pending appointment. Only a
// pending appointment may be reviewed.
func (s *BloodlinkStore) ReviewAppointment(appointmentID uint, approve bool) error {
	status := schema.AppointmentStatusApproved
	if !approve {
		status = schema.AppointmentStatusRejected
	}

	result := s.ormDB.Model(schema.Appointment{}).
		Where("id = ? AND appointment_status = ?", appointmentID, schema.AppointmentStatusPending).
		Update("appointment_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotTransitionable
	}

	s.slotCache.Purge()

	return nil
}

// CloseAppointment marks the donation outcome of an approved appointment as
// completed or cancelled
func (s *BloodlinkStore) CloseAppointment(appointmentID uint, completed bool) error {
	status := schema.DonationStatusCompleted
	if !completed {
		status = schema.DonationStatusCancelled
	}

	result := s.ormDB.Model(schema.Appointment{}).
		Where("id = ? AND appointment_status = ? AND donation_status = ?",
			appointmentID, schema.AppointmentStatusApproved, schema.DonationStatusPending).
		Update("donation_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotTransitionable
	}

	s.slotCache.Purge()

	return nil
}

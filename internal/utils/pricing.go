package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Date represents a calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("day %d is out of range for month %d", day, month)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	return 31
}

// ordinal converts a date to a running day count so ranges can be compared
// and subtracted without time-zone arithmetic.
func (d Date) ordinal() int {
	days := d.Day
	for m := 1; m < d.Month; m++ {
		days += DaysInMonth(d.Year, m)
	}
	for y := 1; y < d.Year; y++ {
		days += 365
		if (y%4 == 0 && y%100 != 0) || (y%400 == 0) {
			days++
		}
	}
	return days
}

// RentalDays computes the chargeable day count for a date range, both start
// and end dates included. End must not precede start.
func RentalDays(startDate, endDate string) (int, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date: %w", err)
	}

	days := end.ordinal() - start.ordinal() + 1
	if days < 1 {
		return 0, fmt.Errorf("end date must be >= start date")
	}
	return days, nil
}

// RentalTotal computes the total price for a closed date range at a per-day
// rate.
func RentalTotal(startDate, endDate string, pricePerDay float64) (float64, error) {
	days, err := RentalDays(startDate, endDate)
	if err != nil {
		return 0, err
	}
	return float64(days) * pricePerDay, nil
}

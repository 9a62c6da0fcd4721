package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ImpanaSR/Symptom-story/internal/adapter/outbound/offline"
	"github.com/ImpanaSR/Symptom-story/internal/domain/consult"
	"github.com/ImpanaSR/Symptom-story/internal/domain/forms"
)

var (
	bookDoctor      string
	bookDate        string
	bookTime        string
	bookEmail       string
	bookPassword    string
	bookListDoctors bool
	bookListBooked  bool
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book an appointment slot (offline mode)",
	Long: `Book an appointment against the local offline store.

Requires offline mode (offline.enabled in the config file or
SYMPTOM_STORY_OFFLINE_ENABLED=true) and a locally registered account
(see "symptom-story signup" in offline mode).

Examples:
  symptom-story book --list-doctors
  symptom-story book --email p@example.com --doctor "Priya" --date 2026-09-01 --time 10:30
  symptom-story book --email p@example.com --list`,
	RunE: runBook,
}

func init() {
	bookCmd.Flags().StringVar(&bookDoctor, "doctor", "", "doctor ID, name, or specialization")
	bookCmd.Flags().StringVar(&bookDate, "date", "", "appointment date (YYYY-MM-DD)")
	bookCmd.Flags().StringVar(&bookTime, "time", "", "appointment time (HH:MM)")
	bookCmd.Flags().StringVar(&bookEmail, "email", "", "offline account email")
	bookCmd.Flags().StringVar(&bookPassword, "password", "", "offline account password (or SYMPTOM_STORY_PASSWORD)")
	bookCmd.Flags().BoolVar(&bookListDoctors, "list-doctors", false, "print the doctor directory and exit")
	bookCmd.Flags().BoolVar(&bookListBooked, "list", false, "list your booked appointments instead of booking")
	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	if bookListDoctors {
		for _, d := range consult.Doctors() {
			fmt.Printf("%s  %-20s %s\n", d.ID, d.Name, d.Specialization)
		}
		return nil
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	if !a.cfg.Offline.Enabled {
		return errors.New("booking requires offline mode: set offline.enabled in the config")
	}

	password := bookPassword
	if password == "" {
		password = os.Getenv("SYMPTOM_STORY_PASSWORD")
	}

	store, err := offline.Open(a.cfg.Offline.DatabasePath, a.logger)
	if err != nil {
		return err
	}
	defer store.Close()

	patient, err := store.Authenticate(cmd.Context(), bookEmail, password)
	if err != nil {
		return err
	}

	if bookListBooked {
		appointments, err := store.Appointments(cmd.Context(), patient.ID)
		if err != nil {
			return err
		}
		if len(appointments) == 0 {
			fmt.Println("No booked appointments.")
			return nil
		}
		for _, appt := range appointments {
			fmt.Printf("%s %s  %s (%s)\n", appt.Date, appt.Time, appt.DoctorName, appt.Specialization)
		}
		return nil
	}

	doctor, ok := consult.FindDoctor(bookDoctor)
	if !ok {
		return fmt.Errorf("no doctor matching %q; try --list-doctors", bookDoctor)
	}

	form := forms.BookingForm{DoctorID: doctor.ID, Date: bookDate, Time: bookTime}
	if err := forms.Validate(form); err != nil {
		return err
	}

	appt, err := store.BookAppointment(cmd.Context(), patient.ID, doctor.Name, doctor.Specialization, bookDate, bookTime)
	if err != nil {
		return err
	}

	fmt.Printf("Booked %s (%s) on %s at %s.\n", appt.DoctorName, appt.Specialization, appt.Date, appt.Time)
	return nil
}

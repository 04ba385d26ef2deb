package store

import "github.com/mergington/activities/internal/model"

// Seed returns the fixed activity set the store is initialized with at
// process start. A fresh map is built on every call so tests can construct
// isolated stores.
func Seed() map[string]*model.Activity {
	return map[string]*model.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Soccer Team": {
			Description:     "Join the school soccer team and compete in regional tournaments",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Swimming Club": {
			Description:     "Improve swimming techniques and participate in swim meets",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{},
		},
		"Art Club": {
			Description:     "Explore various art mediums including painting, drawing, and sculpture",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"sarah@mergington.edu", "lucas@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Perform in school plays and develop acting skills",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:30 PM",
			MaxParticipants: 30,
			Participants:    []string{"mia@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop critical thinking and public speaking skills through competitive debates",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"james@mergington.edu", "ava@mergington.edu"},
		},
		"Science Club": {
			Description:     "Conduct experiments and explore scientific concepts through hands-on projects",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"noah@mergington.edu"},
		},
	}
}

// Package catalog holds the activities offered at Mergington High School.
package catalog

import "mergingtonactivities/internal/domain"

type entry struct {
	name, description, schedule string
	maxParticipants             int
	participants                []string
}

var activities = []entry{
	{"Chess Club", "Learn strategies and compete in chess tournaments", "Fridays, 3:30 PM - 5:00 PM", 12,
		[]string{"michael@mergington.edu", "daniel@mergington.edu"}},
	{"Programming Class", "Learn programming fundamentals and build software projects", "Tuesdays and Thursdays, 3:30 PM - 4:30 PM", 20,
		[]string{"emma@mergington.edu", "sophia@mergington.edu"}},
	{"Gym Class", "Physical education and sports activities", "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM", 30,
		[]string{"john@mergington.edu", "olivia@mergington.edu"}},
	{"Soccer Team", "Join the school soccer team and compete in matches", "Tuesdays and Thursdays, 4:00 PM - 5:30 PM", 22,
		[]string{"liam@mergington.edu", "noah@mergington.edu"}},
	{"Basketball Team", "Practice and play basketball with the school team", "Wednesdays and Fridays, 3:30 PM - 5:00 PM", 15,
		[]string{"ava@mergington.edu", "mia@mergington.edu"}},
	{"Tennis Club", "Improve your serve and play friendly singles and doubles", "Mondays and Thursdays, 4:00 PM - 5:30 PM", 10,
		[]string{"lucas@mergington.edu"}},
	{"Art Club", "Explore your creativity through painting and drawing", "Thursdays, 3:30 PM - 5:00 PM", 15,
		[]string{"amelia@mergington.edu", "harper@mergington.edu"}},
	{"Drama Club", "Act, direct, and produce plays and performances", "Mondays and Wednesdays, 4:00 PM - 5:30 PM", 20,
		[]string{"ella@mergington.edu", "scarlett@mergington.edu"}},
	{"Math Club", "Solve challenging problems and participate in math competitions", "Tuesdays, 3:30 PM - 4:30 PM", 10,
		[]string{"james@mergington.edu", "benjamin@mergington.edu"}},
	{"Debate Team", "Develop public speaking and argumentation skills", "Fridays, 4:00 PM - 5:30 PM", 12,
		[]string{"charlotte@mergington.edu", "henry@mergington.edu"}},
}

// Default returns a fresh copy of the seed activities in catalogue order.
// Each call allocates new participant slices.
func Default() []*domain.Activity {
	out := make([]*domain.Activity, 0, len(activities))
	for _, e := range activities {
		a := domain.NewActivity(e.name, e.description, e.schedule, e.maxParticipants)
		a.Participants = append(a.Participants, e.participants...)
		out = append(out, a)
	}
	return out
}

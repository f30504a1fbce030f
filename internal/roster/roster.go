// Package roster carries the static 2025 team and driver lineup shown on
// the teams-and-drivers pages. The data is fixed at build time; live
// session entry lists come from the openf1 gateway instead.
package roster

// Driver is one rostered race driver.
type Driver struct {
	Name        string `json:"name"`
	Number      int    `json:"number"`
	Nationality string `json:"nationality"`
	ImageURL    string `json:"image_url"`
	FlagURL     string `json:"flag_url"`
}

// Team is one constructor entry with its driver pairing.
type Team struct {
	Name    string   `json:"name"`
	Car     string   `json:"car"`
	Color   string   `json:"color"`
	CarURL  string   `json:"car_url"`
	LogoURL string   `json:"logo_url"`
	Drivers []Driver `json:"drivers"`
}

// Teams returns the 2025 grid in championship-entry order, with the
// formula1.com media URLs filled in from the names.
func Teams() []Team {
	teams := grid()
	for i := range teams {
		teams[i].CarURL = TeamCarURL(teams[i].Name)
		teams[i].LogoURL = TeamLogoURL(teams[i].Name)
		for j := range teams[i].Drivers {
			d := &teams[i].Drivers[j]
			d.ImageURL = DriverImageURL(d.Name)
			d.FlagURL = FlagURL(d.Nationality)
		}
	}
	return teams
}

func grid() []Team {
	return []Team{
		{
			Name:  "Red Bull Racing",
			Car:   "RB21",
			Color: "#3671C6",
			Drivers: []Driver{
				{Name: "Max Verstappen", Number: 1, Nationality: "Netherlands"},
				{Name: "Liam Lawson", Number: 30, Nationality: "New Zealand"},
			},
		},
		{
			Name:  "Ferrari",
			Car:   "SF-25",
			Color: "#E8002D",
			Drivers: []Driver{
				{Name: "Charles Leclerc", Number: 16, Nationality: "Monaco"},
				{Name: "Lewis Hamilton", Number: 44, Nationality: "United Kingdom"},
			},
		},
		{
			Name:  "Mercedes",
			Car:   "W16",
			Color: "#27F4D2",
			Drivers: []Driver{
				{Name: "George Russell", Number: 63, Nationality: "United Kingdom"},
				{Name: "Andrea Kimi Antonelli", Number: 12, Nationality: "Italy"},
			},
		},
		{
			Name:  "McLaren",
			Car:   "MCL39",
			Color: "#FF8000",
			Drivers: []Driver{
				{Name: "Lando Norris", Number: 4, Nationality: "United Kingdom"},
				{Name: "Oscar Piastri", Number: 81, Nationality: "Australia"},
			},
		},
		{
			Name:  "Aston Martin",
			Car:   "AMR25",
			Color: "#229971",
			Drivers: []Driver{
				{Name: "Fernando Alonso", Number: 14, Nationality: "Spain"},
				{Name: "Lance Stroll", Number: 18, Nationality: "Canada"},
			},
		},
		{
			Name:  "Alpine",
			Car:   "A525",
			Color: "#0093CC",
			Drivers: []Driver{
				{Name: "Pierre Gasly", Number: 10, Nationality: "France"},
				{Name: "Jack Doohan", Number: 7, Nationality: "Australia"},
			},
		},
		{
			Name:  "Williams",
			Car:   "FW47",
			Color: "#64C4FF",
			Drivers: []Driver{
				{Name: "Alexander Albon", Number: 23, Nationality: "Thailand"},
				{Name: "Carlos Sainz", Number: 55, Nationality: "Spain"},
			},
		},
		{
			Name:  "Racing Bulls",
			Car:   "VCARB 02",
			Color: "#6692FF",
			Drivers: []Driver{
				{Name: "Yuki Tsunoda", Number: 22, Nationality: "Japan"},
				{Name: "Isack Hadjar", Number: 6, Nationality: "France"},
			},
		},
		{
			Name:  "Kick Sauber",
			Car:   "C45",
			Color: "#52E252",
			Drivers: []Driver{
				{Name: "Nico Hulkenberg", Number: 27, Nationality: "Germany"},
				{Name: "Gabriel Bortoleto", Number: 5, Nationality: "Brazil"},
			},
		},
		{
			Name:  "Haas",
			Car:   "VF-25",
			Color: "#B6BABD",
			Drivers: []Driver{
				{Name: "Esteban Ocon", Number: 31, Nationality: "France"},
				{Name: "Oliver Bearman", Number: 87, Nationality: "United Kingdom"},
			},
		},
	}
}

// Drivers returns every rostered driver in team order.
func Drivers() []Driver {
	var drivers []Driver
	for _, team := range Teams() {
		drivers = append(drivers, team.Drivers...)
	}
	return drivers
}

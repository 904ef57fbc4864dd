package consts

import (
	"fmt"
)

// Region holds the selectable location levels under a state.
type Region struct {
	Districts      []string
	Constituencies []string
}

var INStateRegions map[string]Region

func init() {
	INStateRegions = make(map[string]Region)

	INStateRegions["Telangana"] = Region{
		Districts: []string{
			"Adilabad", "Bhadradri Kothagudem", "Hanamkonda", "Hyderabad", "Jagtial", "Jangaon",
			"Jayashankar Bhupalpally", "Jogulamba Gadwal", "Kamareddy", "Karimnagar", "Khammam",
			"Komaram Bheem Asifabad", "Mahabubabad", "Mahbubnagar", "Mancherial", "Medak",
			"Medchal-Malkajgiri", "Mulugu", "Nagarkurnool", "Nalgonda", "Narayanpet", "Nirmal",
			"Nizamabad", "Peddapalli", "Rajanna Sircilla", "Rangareddy", "Sangareddy", "Siddipet",
			"Suryapet", "Vikarabad", "Wanaparthy", "Warangal", "Yadadri Bhuvanagiri",
		},
		Constituencies: []string{
			"Adilabad", "Bhongir", "Chevella", "Hyderabad", "Karimnagar", "Khammam",
			"Mahabubabad", "Mahbubnagar", "Malkajgiri", "Medak", "Nagarkurnool",
			"Nalgonda", "Nizamabad", "Peddapalle", "Secunderabad", "Warangal", "Zahirabad",
		},
	}

	INStateRegions["Andhra Pradesh"] = Region{
		Districts: []string{
			"Alluri Sitharama Raju", "Anakapalli", "Anantapur", "Annamayya", "Bapatla", "Chittoor",
			"Dr. B.R. Ambedkar Konaseema", "East Godavari", "Eluru", "Guntur", "Kakinada", "Krishna",
			"Kurnool", "Nandyal", "NTR", "Palnadu", "Parvathipuram Manyam", "Prakasam",
			"SPSR Nellore", "Sri Sathya Sai", "Srikakulam", "Tirupati", "Visakhapatnam",
			"Vizianagaram", "West Godavari", "YSR District",
		},
		Constituencies: []string{
			"Amalapuram", "Anakapalli", "Anantapur", "Araku", "Bapatla", "Chittoor",
			"Eluru", "Guntur", "Hindupur", "Kadapa", "Kakinada", "Kurnool",
			"Machilipatnam", "Nandyal", "Narasaraopet", "Narsapuram", "Nellore", "Ongole",
			"Rajahmundry", "Rajampet", "Srikakulam", "Tirupati", "Vijayawada",
			"Visakhapatnam", "Vizianagaram",
		},
	}
}

// StateRegion - look up the region data of a state
func StateRegion(state string) (Region, error) {
	region, ok := INStateRegions[state]
	if !ok {
		return Region{}, fmt.Errorf("%s not exist", state)
	}
	return region, nil
}

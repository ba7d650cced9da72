package main

import "github.com/Priyank-2005/opencric/pkg/models"

// rankingTables is the bundled snapshot of the ICC player rankings
// the rankings page displays until an operator uploads fresher ones.
var rankingTables = map[string][]models.RankedPlayer{
	"men_test_batting": {
		{Rank: 1, Name: "Joe Root", Team: "England", Rating: 884},
		{Rank: 2, Name: "Harry Brook", Team: "England", Rating: 853},
		{Rank: 3, Name: "Kane Williamson", Team: "New Zealand", Rating: 850},
		{Rank: 4, Name: "Steven Smith", Team: "Australia", Rating: 809},
		{Rank: 5, Name: "Travis Head", Team: "Australia", Rating: 792},
		{Rank: 6, Name: "Kamindu Mendis", Team: "Sri Lanka", Rating: 781},
		{Rank: 7, Name: "Temba Bavuma", Team: "South Africa", Rating: 775},
		{Rank: 8, Name: "Yashasvi Jaiswal", Team: "India", Rating: 750},
		{Rank: 9, Name: "Daryl Mitchell", Team: "New Zealand", Rating: 748},
		{Rank: 10, Name: "Ben Duckett", Team: "England", Rating: 739},
	},
	"men_odi_batting": {
		{Rank: 1, Name: "Rohit Sharma", Team: "India", Rating: 783},
		{Rank: 2, Name: "Daryl Mitchell", Team: "New Zealand", Rating: 766},
		{Rank: 3, Name: "Ibrahim Zadran", Team: "Afghanistan", Rating: 764},
		{Rank: 4, Name: "Virat Kohli", Team: "India", Rating: 751},
		{Rank: 5, Name: "Shubman Gill", Team: "India", Rating: 738},
		{Rank: 6, Name: "Babar Azam", Team: "Pakistan", Rating: 722},
		{Rank: 7, Name: "Harry Tector", Team: "Ireland", Rating: 708},
		{Rank: 8, Name: "Shai Hope", Team: "West Indies", Rating: 701},
		{Rank: 9, Name: "Shreyas Iyer", Team: "India", Rating: 693},
		{Rank: 10, Name: "Charith Asalanka", Team: "Sri Lanka", Rating: 690},
	},
	"men_t20_batting": {
		{Rank: 1, Name: "Abhishek Sharma", Team: "India", Rating: 920},
		{Rank: 2, Name: "Philip Salt", Team: "England", Rating: 849},
		{Rank: 3, Name: "Pathum Nissanka", Team: "Sri Lanka", Rating: 779},
		{Rank: 4, Name: "Jos Buttler", Team: "England", Rating: 770},
		{Rank: 5, Name: "Tilak Varma", Team: "India", Rating: 761},
		{Rank: 6, Name: "Sahibzada Farhan", Team: "Pakistan", Rating: 752},
		{Rank: 7, Name: "Travis Head", Team: "Australia", Rating: 713},
		{Rank: 8, Name: "Suryakumar Yadav", Team: "India", Rating: 691},
		{Rank: 9, Name: "Mitchell Marsh", Team: "Australia", Rating: 684},
		{Rank: 10, Name: "Tim Seifert", Team: "New Zealand", Rating: 683},
	},
	"men_test_bowling": {
		{Rank: 1, Name: "Jasprit Bumrah", Team: "India", Rating: 879},
		{Rank: 2, Name: "Matt Henry", Team: "New Zealand", Rating: 846},
		{Rank: 3, Name: "Noman Ali", Team: "Pakistan", Rating: 843},
		{Rank: 4, Name: "Pat Cummins", Team: "Australia", Rating: 830},
		{Rank: 5, Name: "Marco Jansen", Team: "South Africa", Rating: 825},
		{Rank: 6, Name: "Mitchell Starc", Team: "Australia", Rating: 820},
		{Rank: 7, Name: "Kagiso Rabada", Team: "South Africa", Rating: 807},
		{Rank: 8, Name: "Josh Hazlewood", Team: "Australia", Rating: 807},
		{Rank: 9, Name: "Scott Boland", Team: "Australia", Rating: 785},
		{Rank: 10, Name: "Nathan Lyon", Team: "Australia", Rating: 765},
	},
}

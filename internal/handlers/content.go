package handlers

import (
	"context"
	"net/http"
	"time"
)

// GetRankings returns every ranking table keyed by category
func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	rankings, err := h.rankings.GetRankings(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve rankings", err)
		return
	}

	respondJSON(w, http.StatusOK, rankings)
}

type newsItem struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Time    string `json:"time"`
	Image   string `json:"image"`
	Link    string `json:"link"`
}

type seriesItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Dates string `json:"dates"`
}

// GetNews serves the static news feed. There is no CMS behind this;
// the payload matches what the news page expects.
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, []newsItem{
		{1, "Hardik Pandya returns to Mumbai Indians as captain for IPL 2026", "In a stunning trade window move, the all-rounder returns to his home franchise, taking over the reins from Rohit Sharma.", "1h ago", "https://placehold.co/600x400/004ba0/ffffff?text=Hardik+Returns", "#"},
		{2, "Ashes 2025: England announce squad for Perth Test", "Jofra Archer returns to the red-ball setup after a 2-year hiatus, while young spinner Rehan Ahmed gets the nod over Leach.", "3h ago", "https://placehold.co/600x400/ce1124/ffffff?text=Ashes+Squad", "#"},
		{3, "Kohli's 51st ODI Century: A statistical deep dive", "Breaking down the numbers behind the maestro's latest masterclass at the Wankhede. How does he compare to Sachin now?", "5h ago", "https://placehold.co/600x400/005b96/ffffff?text=Kohli+51", "#"},
		{4, "WTC Points Table Update: South Africa climb to second spot", "With a comprehensive innings victory over West Indies, the Proteas have strengthened their chances for the Lord's final.", "8h ago", "https://placehold.co/600x400/007749/ffffff?text=WTC+Table", "#"},
		{5, "BCCI announces new central contracts: Rinku Singh promoted", "The explosive finisher earns a Grade B contract following his consistent performances in the T20I format.", "12h ago", "https://placehold.co/600x400/1c1c1c/ffffff?text=BCCI+Contracts", "#"},
		{6, "Women's Premier League: Auction purse remaining for all 5 teams", "Gujarat Giants have the biggest purse heading into the mini-auction, while Mumbai Indians look for overseas pacers.", "1d ago", "https://placehold.co/600x400/ec008c/ffffff?text=WPL+Auction", "#"},
		{7, "Injury Update: Maxwell ruled out of T20 series vs Pakistan", "The Australian all-rounder suffered a hamstring strain during training and will fly home for rehabilitation.", "1d ago", "https://placehold.co/600x400/ffcd00/000000?text=Maxwell+Injured", "#"},
		{8, "Ranji Trophy: Mumbai clinch 43rd title in thrilling final", "A five-wicket haul from Tushar Deshpande helped Mumbai bowl out Vidarbha on the final day to lift the trophy.", "2d ago", "https://placehold.co/600x400/333333/ffffff?text=Ranji+Champs", "#"},
	})
}

// GetSeries serves the static series calendar
func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, []seriesItem{
		{1, "India tour of Australia, 2025-26", "Oct 19 - Jan 07"},
		{2, "The Ashes 2025-26", "Nov 21 - Jan 05"},
		{3, "ICC Women's World Cup 2025", "Oct 01 - Nov 02"},
		{4, "South Africa tour of India", "Nov 10 - Dec 15"},
		{5, "Big Bash League 2025-26", "Dec 12 - Feb 04"},
	})
}

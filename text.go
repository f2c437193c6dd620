package main

var (
	AboutMe = `I love building software that’s both useful and fun, and I’m always curious about how things work behind the scenes. 
	Most of my projects start with a simple idea and turn into a chance to learn something new, whether it’s exploring a 
	different language, experimenting with tools, or solving tricky problems.
	When I’m not coding, you’ll usually find me training Muay Thai, shooting pool with friends, 
	or chasing down a new challenge outside the screen.`

	ProjectOne = `A terminal-based email client built in Go with fuzzyfinder capabilities
	using the Charmbracelet TUI framework and go-imap.`

	ProjectTwo = `A terminal-based music streaming application built in Go with an elegant TUI 
	interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.`

	ProjectThree = `A machine learning-powered web application that uses TF-IDF vectorization and cosine 
	similarity to recommend games based on content analysis, featuring interactive data visualizations and 
	real-time filtering by user reviews and ratings.`

	ProjectFour = `This site: a Go and Gin server whose landing page streams an A* search across a freshly 
	generated maze on every cycle, revealing each explored cell and then the shortest route over a websocket.`
)

// TimelineEntry is one stop on the work or education timeline.
type TimelineEntry struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Subtitle     string   `json:"subtitle,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	LogoPath     string   `json:"logo_path"`
	Bullets      []string `json:"bullets"`
	Position     string   `json:"position"` // "left" or "right" of the spine
}

var WorkTimeline = []TimelineEntry{
	{
		Title:        "Presentation Expert",
		Organization: "Target",
		StartDate:    "Aug 2023",
		EndDate:      "Present",
		LogoPath:     "images/TargetLogo.jpg",
		Position:     "right",
		Bullets: []string{
			"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
			"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
			"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
		},
	},
	{
		Title:        "Manager",
		Organization: "Jasons Catered Events",
		StartDate:    "Aug 2016",
		EndDate:      "Present",
		LogoPath:     "images/jasonsCateringLogo.png",
		Position:     "left",
		Bullets: []string{
			"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
			"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems, reducing technical delays and improving communication",
			"Maintained supply inventory and coordinated timely delivery between venues, optimizing resource allocation and minimizing downtime.",
		},
	},
}

var EducationTimeline = []TimelineEntry{
	{
		Title:        "Bachelor of Computer Science",
		Organization: "Western Governors University",
		StartDate:    "Sept 2019",
		EndDate:      "May 2023",
		LogoPath:     "images/WGU-logo.png",
		Position:     "left",
		Bullets: []string{
			"Graduated Magna Cum Laude with 3.8 GPA",
			"Relevant coursework: Data Structures, Algorithms, Web Development",
			"Senior project: Machine Learning recommendation system",
		},
	},
	{
		Title:        "Project Management",
		Organization: "Comptia",
		StartDate:    "July 2022",
		EndDate:      "Present",
		LogoPath:     "images/comptiaCert.png",
		Position:     "right",
		Bullets: []string{
			"Certified in agile project management methodology",
			"Verification code: SRRRPGBSWBRQCCDJ",
		},
	},
}

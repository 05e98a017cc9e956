package store

// seedJobs returns the fixed set of open positions. Jobs have no mutation
// operations; their lifecycle is the process lifetime.
func seedJobs() []Job {
	return []Job{
		{
			ID:          "1",
			Title:       "Senior Frontend Engineer",
			Location:    "San Francisco, CA",
			Description: "We are looking for an experienced Frontend Engineer to join our growing team. You will work on building scalable, user-friendly applications.",
			Department:  "Engineering",
		},
		{
			ID:          "2",
			Title:       "Product Manager",
			Location:    "New York, NY",
			Description: "Lead product strategy and development. Work cross-functionally with engineering, design, and marketing teams.",
			Department:  "Product",
		},
		{
			ID:          "3",
			Title:       "UX/UI Designer",
			Location:    "Remote",
			Description: "Design beautiful and intuitive user interfaces. Collaborate with product and engineering teams.",
			Department:  "Design",
		},
	}
}

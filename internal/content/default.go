package content

// Default returns the built-in page content.
func Default() *Model {
	return &Model{
		Person: Person{
			Name:    "Raghuveer Draksharam",
			Tagline: "Software Engineer & AI/ML Enthusiast",
		},
		Experiences: []Experience{
			{
				Company:  "ADP, Inc.",
				Role:     "Software Engineer",
				Location: "Hyderabad, India",
				Period:   "Jul 2022 – Jul 2024",
				Achievements: []string{
					"Designed and implemented a full‑stack application to streamline client onboarding with a dynamic, metadata‑driven UI.",
					"Developed RESTful APIs and integrated an Angular front‑end with Spring Boot backend and MySQL, reducing client onboarding time by 66%.",
					"Automated testing with Selenium and Java to reduce manual testing by 40% and improved CI/CD pipelines.",
				},
				Technologies: []string{"Angular", "Spring Boot", "MySQL", "Selenium", "Jenkins", "Git"},
			},
			{
				Company:  "Clarivate",
				Role:     "Machine Learning Intern",
				Location: "Noida, India",
				Period:   "Jan 2022 – Jun 2022",
				Achievements: []string{
					"Developed a machine learning pipeline to automate classification of over 500 patents with 94% accuracy.",
					"Fine‑tuned a BERT‑based model and optimised performance through hyperparameter tuning and cross‑validation.",
					"Reduced manual workload by 8 hours per week per employee by automating patent categorisation.",
				},
				Technologies: []string{"Python", "PyTorch", "Pandas", "BERT", "Machine Learning"},
			},
		},
		Projects: []Project{
			{
				Name: "Jokes Meet AI",
				Date: "2025",
				Description: `Built a clustering and classification pipeline using Sentence‑BERT and HDBSCAN to analyse and 
categorise over one million jokes into distinct humour types. Leveraged UMAP for dimensionality reduction and 
fine‑tuned DistilBERT to achieve 83% accuracy.`,
				Technologies: []string{"Python", "TensorFlow", "Sentence‑BERT", "HDBSCAN", "UMAP"},
				Award:        "Research Project",
				Image:        "static/images/project1.svg",
			},
			{
				Name: "Student‑Faculty Discussion Forum & Availability Tracker",
				Date: "2021",
				Description: `Developed a MERN stack app enabling students to track real‑time faculty availability and host 
collaborative discussions using WebSocket, reducing student wait times from hours to minutes.`,
				Technologies: []string{"React", "Express", "Node.js", "MongoDB", "WebSocket"},
				Award:        "Campus Project",
				Image:        "static/images/project2.svg",
			},
			{
				Name: "Rental Bike Tracking System",
				Date: "2021",
				Description: `Created a mobile and web platform for bike rentals with location selection, fare estimation, 
secure payments and route optimisation. Integrated Google Maps API and built a secure virtual wallet for transactions.`,
				Technologies: []string{"React Native", "Node.js", "Express", "MongoDB", "Google Maps API"},
				Award:        "Personal Project",
				Image:        "static/images/project3.svg",
			},
		},
		Skills: []SkillCategory{
			{
				Category: "Programming Languages",
				Items:    []string{"Python", "Java", "TypeScript", "C", "JavaScript", "Go", "MySQL"},
			},
			{
				Category: "Libraries & Frameworks",
				Items:    []string{"NumPy", "Pandas", "Scikit‑Learn", "PySpark", "PyTorch", "TensorFlow", "Tailwind", "React", "Angular", "Express", "Node.js"},
			},
			{
				Category: "Tools & Platforms",
				Items:    []string{"Git", "Docker", "Kubernetes", "AWS", "Linux", "JIRA", "PostgreSQL"},
			},
			{
				Category: "Data & Analytics",
				Items:    []string{"NumPy", "Pandas", "Matplotlib", "Seaborn", "Scikit‑Learn", "MongoDB", "PostgreSQL"},
			},
		},
		Achievements: []Achievement{
			{
				Title:       "Orion Space Hackathon 2025",
				Result:      "3rd Place",
				Description: "Awarded for the Light Pollution Explorer project showcasing real‑world data visualisation.",
				Icon:        "fa-trophy",
			},
			{
				Title:       "National Level U‑16 Cricket Player",
				Result:      "Captain & Club Head",
				Description: "Represented Andhra Pradesh in national tournaments and led the university cricket team to a 75% win rate.",
				Icon:        "fa-medal",
			},
		},
	}
}

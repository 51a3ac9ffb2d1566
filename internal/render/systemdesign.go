package render

func systemDesignFamily() Family {
	t := Table{
		"introduction": func(p Params) Block {
			return Block{
				Intro: "Welcome to " + p.Name() + ". This guide covers essential system design principles and patterns for building scalable applications.",
				Note:  "What you'll learn: Design principles, scalability patterns, and real-world architecture decisions for " + p.NameLower() + ".",
			}
		},
		"examples": func(p Params) Block {
			return Block{
				Intro: "Example system design interview questions and solutions.",
				Questions: []Question{
					{Title: "Question 1", Tag: "Design", Prompt: "Example system design question related to " + p.NameLower(), Considerations: "Scalability, availability, consistency"},
					{Title: "Question 2", Tag: "Architecture", Prompt: "Complex system design scenario", Considerations: "Performance, fault tolerance, data consistency"},
					{Title: "Question 3", Tag: "Real-world", Prompt: "Industry-inspired design challenge", Considerations: "Cost efficiency, monitoring, deployment"},
				},
			}
		},
		"best-practices": func(p Params) Block {
			return Block{
				Intro: "Industry best practices and common pitfalls to avoid.",
				Cards: []Card{
					toned("success", "Do", "Recommended approaches and patterns"),
					toned("danger", "Don't", "Common mistakes and anti-patterns"),
				},
			}
		},
	}
	assign(t, func(p Params) Block {
		return Block{
			Intro: "Deep dive into " + p.BlockLower() + " concepts and implementation strategies.",
			Cards: []Card{
				card("Key Concepts", "Fundamental principles and trade-offs"),
				card("Implementation", "Practical implementation approaches"),
			},
		}
	}, "sql-vs-nosql", "indexing", "sharding", "replication")
	assign(t, func(p Params) Block {
		return Block{
			Intro: "Security best practices for " + p.BlockLower() + ".",
			Cards: []Card{
				card("Security Principles", "Core security concepts and standards"),
				card("Best Practices", "Industry-standard security measures"),
			},
		}
	}, "authentication", "authorization", "encryption")
	assign(t, func(p Params) Block {
		return Block{
			Intro: "Performance optimization through " + p.BlockLower() + ".",
			Cards: []Card{
				card("Performance Gains", "How this improves system performance"),
				card("Use Cases", "When and how to apply these techniques"),
			},
		}
	}, "caching", "load-balancing", "cdn", "concurrency", "optimization")
	assign(t, func(p Params) Block {
		return Block{
			Intro: "Understanding " + p.BlockName() + " architecture pattern.",
			Cards: []Card{
				toned("success", "Advantages", "Benefits of this architecture"),
				toned("warning", "Trade-offs", "Challenges and considerations"),
			},
		}
	}, "microservices", "event-driven", "monolithic", "serverless")
	assign(t, func(p Params) Block {
		return Block{
			Intro: "Understanding " + p.BlockName() + " in network communication.",
			Cards: []Card{
				card("How It Works", "Protocol mechanics and communication flow"),
				card("Use Cases", "When to use this protocol"),
			},
		}
	}, "protocols", "tcp-udp", "http-https", "dns")

	return Family{
		Default: t,
		ByTopic: map[string]Table{
			"question-examples": questionExamplesTable(),
		},
		Fallback: func(p Params) Block {
			return Block{
				Intro: "Detailed content for " + p.BlockLower() + " coming soon.",
				Note:  "This section will cover important aspects of " + p.BlockLower() + " related to " + p.NameLower() + ".",
			}
		},
	}
}

func questionExamplesTable() Table {
	questions := func(intro string) BlockFunc {
		return func(p Params) Block {
			return Block{
				Intro: intro,
				Questions: []Question{
					{Title: "Example Question 1", Tag: "Medium", Prompt: "Sample " + p.BlockLower() + " question", Considerations: "Scalability, performance, reliability"},
					{Title: "Example Question 2", Tag: "Hard", Prompt: "Complex " + p.BlockLower() + " scenario", Considerations: "Distributed systems, consistency, fault tolerance"},
				},
			}
		}
	}
	return Table{
		"introduction": func(Params) Block {
			return Block{Intro: "Common system design interview questions across different topics and difficulty levels."}
		},
		"design-questions":       questions("Core system design questions that test fundamental understanding."),
		"architecture-questions": questions("Advanced questions focused on architectural decisions and trade-offs."),
		"real-world-scenarios":   questions("Real-world scenarios inspired by production systems at major tech companies."),
	}
}

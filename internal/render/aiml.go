package render

func aimlFamily() Family {
	t := Table{
		"introduction": func(p Params) Block {
			return Block{
				Intro: "Welcome to " + p.Name() + ". Explore cutting-edge AI/ML concepts and practical implementations.",
				Note:  "What you'll learn: Fundamentals, algorithms, tools, and real-world applications of " + p.Name() + ".",
			}
		},
		"architecture": func(p Params) Block {
			return Block{
				Intro: "Designing " + p.Name() + " architecture and system components.",
				Cards: []Card{
					card("System Design", "Architecture patterns and components"),
					card("Data Flow", "Information flow and processing"),
				},
			}
		},
		"best-practices": func(p Params) Block {
			return Block{
				Intro: "Best practices for " + p.Name() + " development.",
				Cards: []Card{
					toned("success", "Best Practices", "Recommended approaches"),
					toned("danger", "Pitfalls", "Common challenges and solutions"),
				},
			}
		},
	}
	assign(t, func(p Params) Block {
		return Block{
			Intro: p.BlockName() + " in AI agent systems.",
			Cards: []Card{
				card("Concepts", "Core principles and techniques"),
				card("Implementation", "Practical coding examples"),
			},
		}
	}, "reasoning", "tools")
	assign(t, func(p Params) Block {
		return Block{
			Intro: "Understanding " + p.BlockLower() + " in natural language processing.",
			Cards: []Card{
				card("Theory", "Mathematical foundations"),
				card("Practice", "Hands-on implementation"),
			},
		}
	}, "preprocessing", "embeddings", "transformers", "llms")
	assign(t, func(p Params) Block {
		return Block{
			Intro: p.BlockName() + " techniques for computer vision.",
			Cards: []Card{
				card("Algorithms", "Core algorithms and architectures"),
				card("Models", "Popular model architectures"),
			},
		}
	}, "cnn", "object-detection", "segmentation")
	assign(t, func(p Params) Block {
		return Block{
			Intro: p.BlockName() + " in machine learning workflows.",
			Cards: []Card{
				card("Concepts", "Key principles and methods"),
				card("Techniques", "Practical approaches"),
			},
		}
	}, "supervised", "unsupervised", "evaluation", "deployment")
	assign(t, func(p Params) Block {
		return Block{
			Intro: "Real-world " + p.BlockLower() + " and use cases.",
			Cards: []Card{
				card("Industry Use Cases", "Commercial applications"),
				card("Research Projects", "Academic and experimental work"),
			},
		}
	}, "applications", "examples")
	return Family{Default: t, Fallback: comingSoonIn}
}

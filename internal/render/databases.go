package render

func databasesFamily() Family {
	t := Table{
		"introduction": func(p Params) Block {
			return Block{
				Intro: "Welcome to " + p.Name() + ". Learn how to work with this powerful database system for your applications.",
				Note:  "What you'll learn: Installation, querying, performance optimization, and best practices for " + p.Name() + ".",
			}
		},
		"installation": func(p Params) Block {
			return Block{
				Intro: "Get started with " + p.Name() + " installation and configuration.",
				Code:  "# Install " + p.Name() + "\n# Setup configuration\n# Start the database server\n",
			}
		},
		"indexing": func(Params) Block {
			return Block{
				Intro: "Optimize query performance with indexing strategies.",
				Cards: []Card{
					card("Index Types", "B-tree, hash, and specialized indexes"),
					card("Performance", "Query optimization and execution plans"),
				},
			}
		},
		"best-practices": func(p Params) Block {
			return Block{
				Intro: "Follow " + p.Name() + " best practices for optimal performance and maintainability.",
				Cards: []Card{
					toned("success", "Best Practices", "Schema design, query optimization, security"),
					toned("danger", "Common Pitfalls", "Mistakes to avoid and anti-patterns"),
				},
			}
		},
	}
	assign(t, func(p Params) Block {
		return Block{
			Intro: "Master " + p.BlockLower() + " in " + p.Name() + ".",
			Cards: []Card{
				card("Basic Operations", "Create, read, update, and delete data"),
				card("Complex Queries", "Joins, aggregations, and advanced patterns"),
			},
			Code: "// " + p.BlockName() + " examples\n// Database operations\n",
		}
	}, "queries", "crud")
	assign(t, func(p Params) Block {
		return Block{
			Intro: "Advanced " + p.Name() + " features and capabilities.",
			Cards: []Card{
				card("Advanced Features", "Powerful database capabilities"),
				card("Use Cases", "Real-world applications"),
			},
		}
	}, "aggregation", "advanced")
	return Family{Default: t, Fallback: comingSoonIn}
}

// comingSoonIn is the fallback shared by the operations-oriented sections.
func comingSoonIn(p Params) Block {
	return Block{
		Intro: "Detailed content for " + p.BlockLower() + " coming soon.",
		Note:  "This section will cover " + p.BlockLower() + " in " + p.Name() + ".",
	}
}

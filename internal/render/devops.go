package render

func devopsFamily() Family {
	t := Table{
		"introduction": func(p Params) Block {
			return Block{
				Intro: "Welcome to " + p.Name() + ". Master modern DevOps practices for efficient deployment and operations.",
				Note:  "What you'll learn: Setup, configuration, automation, and best practices for " + p.Name() + ".",
			}
		},
		"best-practices": func(p Params) Block {
			return Block{
				Intro: "Industry best practices for " + p.Name() + ".",
				Cards: []Card{
					toned("success", "Do", "Recommended practices and patterns"),
					toned("danger", "Don't", "Common mistakes and anti-patterns"),
				},
			}
		},
	}
	assign(t, func(p Params) Block {
		return Block{
			Intro: "Working with " + p.BlockName() + " - core service overview and usage.",
			Cards: []Card{
				card("Service Overview", "Key features and capabilities"),
				card("Configuration", "Setup and deployment guide"),
			},
		}
	}, "ec2", "s3", "lambda", "rds", "vms", "storage", "functions", "sql")
	assign(t, func(p Params) Block {
		return Block{
			Intro: p.BlockName() + " concepts and best practices.",
			Code:  "# " + p.BlockName() + " example\n# Configuration and usage\n",
		}
	}, "dockerfile", "images", "compose", "networking")
	assign(t, func(p Params) Block {
		return Block{
			Intro: "Understanding " + p.BlockName() + " in Kubernetes.",
			Cards: []Card{
				card("Concepts", "Core Kubernetes principles"),
				card("YAML Examples", "Configuration templates"),
			},
		}
	}, "pods", "services", "configmaps", "helm")
	assign(t, func(p Params) Block {
		return Block{
			Intro: p.BlockName() + " strategies and implementation.",
			Cards: []Card{
				card("Testing Approach", "Strategy and methodology"),
				card("Tools & Frameworks", "Popular testing tools"),
			},
		}
	}, "unit-testing", "integration-testing", "e2e-testing", "ci-cd")
	return Family{Default: t, Fallback: comingSoonIn}
}

package portfolio

import (
	"strings"

	"portfolio-backend/internal/models"
)

const (
	OwnerName = "Muhammad Saad Haroon"
	Headline  = "Software Engineer - Machine Learning & Full Stack Developer. Specializing in Agentic AI, RAG Systems, and Computer Vision."
)

var contact = models.Contact{
	Email:    "saadharoonjehangir@gmail.com",
	GitHub:   "https://github.com/SaadH-077",
	LinkedIn: "https://www.linkedin.com/in/muhammad-saad-haroon-5b38a1241/",
}

var projects = []models.Project{
	{
		Title:    "Adaptive Entropy UDA",
		Desc:     "Universal Domain Adaptation framework using entropy-guided pseudo-labeling and dynamic rejection loss for non-overlapping label spaces.",
		Tags:     []string{"PyTorch", "Deep Learning", "Research", "Domain Adaptation"},
		Category: "ML/DL",
		Link:     "https://github.com/SaadH-077/Adaptive-Entropy-Guided-Universal-Domain-Adaptation_AEG-UDA-",
	},
	{
		Title:    "Road Damage Detection",
		Desc:     "Multi-label classification system identifying 26 road damage types using ResNet50, InceptionV3, and VGG16 with transfer learning.",
		Tags:     []string{"PyTorch", "Computer Vision", "Deep Learning"},
		Category: "ML/DL",
		Link:     "https://github.com/SaadH-077/Road-Damage-Classification-Using-ResNet50-InceptionV3-and-VGG16-A-Deep-Learning-Approach",
	},
	{
		Title:    "Federated Learning Opt.",
		Desc:     "Benchmarking FedAvg, SCAFFOLD, FedGH & FedSAM algorithms on non-IID MNIST data for distributed training efficiency.",
		Tags:     []string{"Federated Learning", "Optimization", "Python"},
		Category: "ML/DL",
		Link:     "https://github.com/SaadH-077/Federated-Learning-Optimization",
	},
	{
		Title:    "Neural Network Pruning",
		Desc:     "Comparative analysis of structured/unstructured pruning and Lottery Ticket Hypothesis with Knowledge Distillation for model compression.",
		Tags:     []string{"Model Compression", "PyTorch", "Research"},
		Category: "ML/DL",
		Link:     "https://github.com/SaadH-077/DeepPruning-ATML",
	},
	{
		Title:    "SmartCourseAdvisor",
		Desc:     "RAG-based academic advisor using Mistral-7B and ChromaDB. Provides personalized university course recommendations based on student history.",
		Tags:     []string{"RAG", "Mistral-7B", "LangChain", "Gradio"},
		Category: "GenAI / NLP",
		Link:     "https://github.com/SaadH-077/SmartCourseAdvisor-RAG",
	},
	{
		Title:    "Vision3D Landmark Recon",
		Desc:     "3D reconstruction pipeline using ORB features and triangulation to generate 3D point clouds from 2D multi-view images.",
		Tags:     []string{"Computer Vision", "OpenCV", "3D Reconstruction"},
		Category: "Computer Vision",
		Link:     "https://github.com/SaadH-077/Vision3D-Landmark-Recon",
	},
	{
		Title:    "EmployNet Portal",
		Desc:     "Full-stack HR management system enabling companies to automate payroll, attendance, and benefits. Features role-based access control.",
		Tags:     []string{"MERN Stack", "React.js", "Node.js", "MongoDB"},
		Category: "Software Engineering",
		Link:     "https://github.com/SaadH-077/EmployNet",
	},
	{
		Title:    "TradeBiz Platform",
		Desc:     "Real-time trading platform with live offers, WebSocket integration, and secure authentication for seamless marketplace transactions.",
		Tags:     []string{"MERN Stack", "Socket.IO", "TypeScript"},
		Category: "Software Engineering",
		Link:     "https://github.com/SaadH-077/tradebiz-mern",
	},
	{
		Title:    "DananasBB Website",
		Desc:     "Modern, responsive website for a Toronto-based burger chain. Features a custom Spotify player integration, immersive UI/UX design, and seamless navigation.",
		Tags:     []string{"HTML/CSS", "Tailwind CSS", "JavaScript", "UI/UX"},
		Category: "Software Engineering",
		Link:     "https://github.com/SaadH-077/DananasBB-Website",
	},
	{
		Title:    "Saad.AI Portfolio",
		Desc:     "The recursive architecture of this very website. A React-based cyber-interface featuring 3D visualization, terminal emulation, and agentic UI patterns.",
		Tags:     []string{"React", "Three.js", "Framer Motion", "Vite"},
		Category: "Software Engineering",
		Link:     "https://github.com/SaadH-077/saad-ai-portfolio",
	},
}

var skills = []models.SkillCategory{
	{Category: "Agentic & Multimodal AI", Items: []string{"LangGraph", "LangChain", "RAG", "HuggingFace", "Ollama", "Oracle AI Agent Studio", "Mistral", "Whisper", "TTS", "TTV"}},
	{Category: "Cloud & DevOps", Items: []string{"Docker", "Git", "Oracle Cloud Infrastructure (OCI)", "Azure", "Vercel", "CI/CD"}},
	{Category: "Machine Learning & Deep Learning", Items: []string{"PyTorch", "TensorFlow", "Keras", "Scikit-learn", "FastAI", "OpenCV"}},
	{Category: "Natural Language Processing (NLP)", Items: []string{"LLMs", "Sentiment Analysis", "Prompt Engineering", "Transformers"}},
	{Category: "Computer Vision", Items: []string{"Vision Transformers (ViTs)", "GANs", "CycleGANs", "GNNs", "Object Detection", "Semantic Segmentation"}},
	{Category: "Data Engineering & Analysis", Items: []string{"Oracle Analytics", "BeautifulSoup", "Selenium", "ChromiumDriver", "NumPy", "Pandas", "Matplotlib", "Seaborn", "Tableau", "Power BI"}},
	{Category: "Full Stack & Databases", Items: []string{"FastAPI", "PostgreSQL", "React.js", "MERN", "MongoDB", "Flask", "Streamlit", "Gradio", "n8n"}},
	{Category: "Programming Languages", Items: []string{"Python", "C/C++", "SQL", "HTML/CSS", "JavaScript"}},
}

var experience = []models.Experience{
	{
		Title:   "Associate Software Engineer",
		Company: "GoSaaS, Inc. | Agentic AI Dept",
		Date:    "JUL 2025 - PRESENT",
		Points: []string{
			"Leading the Development of AI Agents for Enterprise Solutions within Oracle Infrastructure, managing a team of 3 AI Engineers.",
			"Contributed to \"GoSaaS Financial AI\", a framework that generates company-specific financial presentations from uploaded data and MD&A documents.",
			"Build and deploy AI agents using Oracle's AI Agent Studio for healthcare and logistics departments.",
			"Design AI-powered analytics dashboards in Oracle Analytics Cloud using client-specific KPIs.",
		},
	},
	{
		Title:   "Head Teaching Assistant | CS 437: Deep Learning",
		Company: "Lahore University of Management Sciences",
		Date:    "JAN 2025 - JUN 2025",
		Points: []string{
			"Led a team of 5 undergraduate & 2 graduate TAs for over 170 students.",
			"Constructed 6 PyTorch programming modules covering CNNs, VAEs, GANs, RNNs, ViTs, Stable Diffusion, GNNs and model compression.",
			"Delivered weekly tutorials and managed research-oriented deep learning projects.",
		},
	},
	{
		Title:   "Teaching Assistant | CS 535: Machine Learning",
		Company: "Lahore University of Management Sciences",
		Date:    "SEP 2024 - DEC 2024",
		Points: []string{
			"Designed programming assignments on Naive Bayes, KNN, RNNs and neural networks.",
			"Developed and graded quizzes for a class of 130 students and mentored students one-on-one.",
		},
	},
	{
		Title:   "Teaching Assistant | CS 331: Introduction to AI",
		Company: "Lahore University of Management Sciences",
		Date:    "JAN 2024 - AUG 2024",
		Points: []string{
			"Delivered tutorials on regression, KNN, SVMs, decision trees and neural networks.",
			"Graded quizzes and assignments for a class of 131 students.",
		},
	},
	{
		Title:   "Undergraduate Research Assistant",
		Company: "Center for Speech and Language Technologies (CSaLT)",
		Date:    "SEP 2022 - JUN 2025",
		Points: []string{
			"Built a Generative AI storytelling framework integrating LLMs, TTS and text-to-video models.",
			"Engineered a multi-agent storytelling system using Propp's Narrative Functions and Freytag's Pyramid.",
			"Analyzed speech markers of 100+ patients with AIHC Lab & SIMS Hospital for mental health diagnostics.",
			"Built custom tokenization and corpus tools to improve Urdu NLP accessibility.",
		},
	},
	{
		Title:   "Student Partner - Generative AI Workshops",
		Company: "LUMS Learning Institute",
		Date:    "MAY 2024 - SEP 2024",
		Points: []string{
			"Delivered workshops on prompt engineering, RAG and AI-powered automation for industry professionals.",
		},
	},
}

var awards = []models.Award{
	{Title: "Award of Distinction", Desc: "Received for outstanding academic achievement in BS Computer Science (Class of 2025) at LUMS."},
	{Title: "Dean's Honour List '23-24", Desc: "Ranked in top tier for exceptional GPA (>3.6). Third consecutive year of recognition for academic excellence."},
	{Title: "Dean's Honour List '22-23", Desc: "Awarded for consistent academic excellence in Sophomore year."},
	{Title: "Dean's Honour List '21-22", Desc: "Recognized for high academic standing in Freshman year."},
	{Title: "Winner - PuYPT", Desc: "1st Place in Punjab Young Physicist Tournament (2019)."},
	{Title: "Runner Up - PYPT", Desc: "2nd Place in Pakistan Young Physicist Tournament (2020)."},
	{Title: "Full Merit Scholarship", Desc: "Awarded 100% Scholarship for A-Levels at LGS based on outstanding O-Level CAIE results."},
	{Title: "Best Event Head", Desc: "Winner Best Event Head at LUMS Psifi XV."},
}

var certifications = []models.Certification{
	{Title: "Oracle AI Vector Search Certified Professional", Issuer: "Oracle", Date: "2025"},
	{Title: "Oracle Cloud Infrastructure 2025 Certified Generative AI Professional", Issuer: "Oracle", Date: "2025"},
	{Title: "Oracle Fusion AI Agent Studio Certified Foundations Associate - Rel 1", Issuer: "Oracle", Date: "2025"},
	{Title: "Oracle Analytics Cloud 2025 Certified Professional", Issuer: "Oracle", Date: "2025"},
}

// Profile returns a copy of the static portfolio data.
func Profile() models.Profile {
	return models.Profile{
		Name:           OwnerName,
		Headline:       Headline,
		Contact:        contact,
		Projects:       append([]models.Project(nil), projects...),
		Skills:         append([]models.SkillCategory(nil), skills...),
		Experience:     append([]models.Experience(nil), experience...),
		Awards:         append([]models.Award(nil), awards...),
		Certifications: append([]models.Certification(nil), certifications...),
	}
}

// ProjectsByCategory filters projects by case-insensitive category; empty returns all.
func ProjectsByCategory(category string) []models.Project {
	if category == "" {
		return append([]models.Project(nil), projects...)
	}
	out := []models.Project{}
	for _, p := range projects {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

func ContactInfo() models.Contact {
	return contact
}

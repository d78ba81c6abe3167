package parser

import "ai900_study_backend/internal/model"

// manualFlashcards 手工维护的核心概念卡，属于静态数据而非解析产物。
// 注意去重规则：与前面自动提取的术语重名时这里的卡会被丢弃。
func manualFlashcards() []*model.Flashcard {
	return []*model.Flashcard{
		{
			Term:       "Machine Learning",
			Definition: "A subset of AI where systems learn from data without being explicitly programmed. Uses algorithms to identify patterns and make predictions.",
			Category:   "core_concept",
			Difficulty: "easy",
		},
		{
			Term:       "Deep Learning",
			Definition: "A subset of machine learning using neural networks with multiple layers. Excels at processing complex data like images and natural language.",
			Category:   "core_concept",
			Difficulty: "medium",
		},
		{
			Term:       "Computer Vision",
			Definition: "AI field focused on enabling machines to interpret and understand visual information from the world, similar to human sight.",
			Category:   "workload",
			Difficulty: "easy",
		},
		{
			Term:       "Natural Language Processing",
			Definition: "AI field that enables machines to understand, interpret, and generate human language, including text and speech.",
			Category:   "workload",
			Difficulty: "easy",
		},
		{
			Term:       "Generative AI",
			Definition: "AI that creates new content such as text, images, or code based on patterns learned from training data.",
			Category:   "workload",
			Difficulty: "medium",
		},
		{
			Term:       "Azure AI Vision",
			Definition: "Azure service for computer vision tasks including image classification, object detection, OCR, and face analysis.",
			Category:   "azure_service",
			Difficulty: "easy",
		},
		{
			Term:       "Azure AI Language",
			Definition: "Azure service for natural language processing including entity recognition, sentiment analysis, and language understanding.",
			Category:   "azure_service",
			Difficulty: "easy",
		},
		{
			Term:       "Azure OpenAI Service",
			Definition: "Azure service providing access to OpenAI models like GPT for generative AI tasks including text generation and code completion.",
			Category:   "azure_service",
			Difficulty: "medium",
		},
		{
			Term:       "Responsible AI",
			Definition: "Framework ensuring AI systems are fair, reliable, safe, inclusive, transparent, accountable, and respect privacy.",
			Category:   "responsible_ai",
			Difficulty: "medium",
		},
		{
			Term:       "Supervised Learning",
			Definition: "ML approach where models learn from labeled training data to make predictions on new, unseen data.",
			Category:   "ml_concept",
			Difficulty: "medium",
		},
		{
			Term:       "Unsupervised Learning",
			Definition: "ML approach where models find patterns in data without labeled examples, such as clustering similar items.",
			Category:   "ml_concept",
			Difficulty: "hard",
		},
		{
			Term:       "Regression",
			Definition: "ML technique for predicting continuous numerical values, such as price prediction or temperature forecasting.",
			Category:   "ml_technique",
			Difficulty: "easy",
		},
		{
			Term:       "Classification",
			Definition: "ML technique for predicting categorical outcomes, such as spam detection or image recognition.",
			Category:   "ml_technique",
			Difficulty: "easy",
		},
		{
			Term:       "Clustering",
			Definition: "Unsupervised ML technique for grouping similar data points together without predefined categories.",
			Category:   "ml_technique",
			Difficulty: "medium",
		},
		{
			Term:       "Transformer Architecture",
			Definition: "Neural network architecture that uses attention mechanisms, powering modern language models like GPT and BERT.",
			Category:   "advanced_concept",
			Difficulty: "hard",
		},
		{
			Term:       "Foundation Model",
			Definition: "Large, pre-trained AI model that can be fine-tuned for specific tasks, such as GPT or BERT.",
			Category:   "advanced_concept",
			Difficulty: "hard",
		},
		{
			Term:       "Prompt Engineering",
			Definition: "The practice of crafting effective prompts to get desired outputs from generative AI models.",
			Category:   "advanced_concept",
			Difficulty: "medium",
		},
		{
			Term:       "Hallucinations",
			Definition: "When AI models generate false or misleading information that appears plausible but is not grounded in reality.",
			Category:   "responsible_ai",
			Difficulty: "medium",
		},
		{
			Term:       "Optical Character Recognition (OCR)",
			Definition: "Technology that converts images of text into machine-readable text format.",
			Category:   "computer_vision",
			Difficulty: "easy",
		},
		{
			Term:       "Sentiment Analysis",
			Definition: "NLP technique that determines whether text expresses positive, negative, or neutral sentiment.",
			Category:   "nlp",
			Difficulty: "easy",
		},
		{
			Term:       "Embeddings",
			Definition: "Vector representations of data that capture semantic meaning, used for similarity search and clustering.",
			Category:   "advanced_concept",
			Difficulty: "hard",
		},
		{
			Term:       "Azure AI Foundry",
			Definition: "Azure platform for building, deploying, and managing AI applications with model catalogs and development tools.",
			Category:   "azure_service",
			Difficulty: "medium",
		},
		{
			Term:       "Automated ML (AutoML)",
			Definition: "Azure Machine Learning feature that automates the process of selecting and training the best ML model for your data.",
			Category:   "azure_service",
			Difficulty: "medium",
		},
		{
			Term:       "MLOps",
			Definition: "Practices for deploying, monitoring, and maintaining ML models in production environments.",
			Category:   "ml_concept",
			Difficulty: "hard",
		},
		{
			Term:       "Features and Labels",
			Definition: "Features are input variables used to make predictions; Labels are the target outputs that models learn to predict.",
			Category:   "ml_concept",
			Difficulty: "easy",
		},
		{
			Term:       "Training and Validation Datasets",
			Definition: "Training data is used to fit the model; Validation data is used to tune hyperparameters and prevent overfitting.",
			Category:   "ml_concept",
			Difficulty: "medium",
		},
		{
			Term:       "Overfitting",
			Definition: "When a model learns the training data too well, including noise, leading to poor performance on new data.",
			Category:   "ml_concept",
			Difficulty: "medium",
		},
		{
			Term:       "Bias in AI",
			Definition: "Systematic errors in AI systems that lead to unfair outcomes, often due to biased training data or algorithms.",
			Category:   "responsible_ai",
			Difficulty: "medium",
		},
	}
}

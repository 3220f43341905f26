package catalog

import "mlguide/internal/domain"

// Page copy shown around the catalog
const (
	Badge             = "Animated visual guide"
	Title             = "Which Model Fits Which Dataset?"
	Subtitle          = "A quick, visual cheat-sheet for ANN, ResNet, DenseNet, Transfer Learning, KNN, Logistic Regression, MLPClassifier, Naive Bayes, Random Forest, and SVM, plus why data cleaning matters."
	SearchPlaceholder = "Search models, datasets, use cases..."
	QuickFilterLabel  = "Quick Filter"
	CleaningHeading   = "Data Cleaning: Use & Advantages"
	CleaningIntro     = "Clean data supercharges every model: better accuracy, faster training, less overfitting, and clearer insights."
	FooterTip         = "Tip: For very small, imbalanced datasets, prefer classical models (LogReg/SVM/NB) or transfer learning over training deep nets from scratch."
)

func models() []domain.ModelRecord {
	return []domain.ModelRecord{
		{
			Key:      "ann",
			Name:     "Artificial Neural Networks (ANN)",
			Icon:     domain.IconBrain,
			Accent:   domain.AccentCyanEmerald,
			BestFor:  "Large datasets with complex, non-linear relationships; images, audio, time series",
			Datasets: []string{"MNIST", "CIFAR-10", "Tabular (non-linear)"},
			UseCases: []string{"Image/speech recognition", "Forecasting"},
		},
		{
			Key:      "resnet",
			Name:     "ResNet",
			Icon:     domain.IconLayers,
			Accent:   domain.AccentVioletIndigo,
			BestFor:  "Very deep image models; avoids vanishing gradients",
			Datasets: []string{"ImageNet", "CIFAR-100", "Medical imaging"},
			UseCases: []string{"Image classification", "Object detection"},
		},
		{
			Key:      "densenet",
			Name:     "DenseNet",
			Icon:     domain.IconNetwork,
			Accent:   domain.AccentFuchsiaPurple,
			BestFor:  "Image tasks where feature reuse matters",
			Datasets: []string{"CIFAR-10", "ImageNet", "X-Ray"},
			UseCases: []string{"Medical imaging", "Fine-grained recognition"},
		},
		{
			Key:      "transfer",
			Name:     "Transfer Learning",
			Icon:     domain.IconRepeat,
			Accent:   domain.AccentRoseOrange,
			BestFor:  "Small/medium labeled datasets; leverage pre-trained backbones",
			Datasets: []string{"Domain-specific images", "Small text corpora"},
			UseCases: []string{"Specialized vision", "NLP fine-tuning"},
		},
		{
			Key:      "knn",
			Name:     "K-Nearest Neighbors (KNN)",
			Icon:     domain.IconListTree,
			Accent:   domain.AccentEmeraldTeal,
			BestFor:  "Small, low-dimensional datasets; instance-based",
			Datasets: []string{"Iris", "Wine", "Small tabular"},
			UseCases: []string{"Pattern recognition", "Recommenders (toy)"},
		},
		{
			Key:      "logreg",
			Name:     "Logistic Regression",
			Icon:     domain.IconSigma,
			Accent:   domain.AccentSkyCyan,
			BestFor:  "Binary/one-vs-rest classification; linearly separable or with simple interactions",
			Datasets: []string{"Titanic", "Credit scoring", "Clinical"},
			UseCases: []string{"Spam/fraud detection", "Risk scoring"},
		},
		{
			Key:      "mlp",
			Name:     "MLPClassifier",
			Icon:     domain.IconGrid,
			Accent:   domain.AccentAmberRose,
			BestFor:  "Structured tabular data with moderate complexity",
			Datasets: []string{"MNIST (flattened)", "General tabular"},
			UseCases: []string{"Classification in finance/retail/health"},
		},
		{
			Key:      "nb",
			Name:     "Naive Bayes (Gaussian / Multinomial / Bernoulli)",
			Icon:     domain.IconBook,
			Accent:   domain.AccentLimeEmerald,
			BestFor:  "Text & probabilistic features; strong independence assumption",
			Datasets: []string{"SMS Spam", "News groups", "Binary features"},
			UseCases: []string{"Spam filtering", "Sentiment & topic labeling"},
		},
		{
			Key:      "rf",
			Name:     "Random Forest",
			Icon:     domain.IconTrees,
			Accent:   domain.AccentGreenCyan,
			BestFor:  "Mixed-type tabular, robust to noise & outliers",
			Datasets: []string{"UCI tabular", "Loan prediction", "Churn"},
			UseCases: []string{"Fraud/churn", "General tabular modeling"},
		},
		{
			Key:      "svm",
			Name:     "Support Vector Machine (SVM)",
			Icon:     domain.IconScanLine,
			Accent:   domain.AccentIndigoSky,
			BestFor:  "Medium-sized, high-dimensional data; kernels for non-linear",
			Datasets: []string{"Breast cancer", "Digits", "Text"},
			UseCases: []string{"Face/text classification", "Bioinformatics"},
		},
	}
}

func tips() []domain.TipRecord {
	return []domain.TipRecord{
		{
			Title: "De-noise & Fix Errors",
			Text:  "Correct typos, impossible values, and inconsistent labels to improve signal-to-noise.",
		},
		{
			Title: "Handle Missingness",
			Text:  "Impute, drop, or flag missing data to avoid biased training and leakage.",
		},
		{
			Title: "Standardize & Encode",
			Text:  "Scale numeric features; encode categoricals for algorithms that require numbers.",
		},
		{
			Title: "Detect Outliers",
			Text:  "Identify anomalies that can skew models; cap, transform, or treat separately.",
		},
		{
			Title: "Benefits",
			Text:  "Higher accuracy, faster training, less overfitting, and clearer interpretability.",
		},
	}
}

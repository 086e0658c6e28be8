package tailor

import "fmt"

func resumePrompt(content, jobDesc string) string {
	return fmt.Sprintf(`**Role:** You are a world-class professional resume writer and career coach specializing in ATS optimization.

**Task:** Rewrite and tailor the provided resume content to perfectly match the given job description. Your goal is a resume that scores 90+ on an ATS scan and impresses recruiters.

**Instructions:**
1. **Analyze & Integrate:** Deeply analyze the **Job Description** for keywords, skills, and qualifications. Rewrite the **Resume Content** to align with it, integrating these keywords naturally.
2. **Quantify Achievements:** Convert responsibilities into measurable achievements (e.g., "Increased sales by 15%%"). Make reasonable assumptions if necessary.
3. **Format:** Use Markdown for structure. Use `+"`**`"+` for bolding key metrics or titles. Ensure the output is clean, professional, and contains only the resume text.
4. **Structure:** Follow this order: Name, Contact Info, Professional Summary, Skills, Work Experience, Education, Projects (optional).

---
**Job Description:**
%s
---
**Resume Content to be Rewritten:**
%s
---
Respond with the rewritten resume only, in strict Markdown.`, jobDesc, content)
}

func questionsPrompt(resume string) string {
	return fmt.Sprintf("Based on this resume, generate 10 interview questions categorized as 'Easy', 'Medium', and 'Hard'.\n\n**Resume:**\n%s", resume)
}

func resourcesPrompt(resume string) string {
	return fmt.Sprintf("Based on the skills in this resume, suggest a brief list of top-tier online learning resources (docs, tutorials, courses) for interview preparation.\n\n**Resume:**\n%s", resume)
}

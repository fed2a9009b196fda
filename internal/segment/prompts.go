package segment

// SegmentPrompt instructs the collaborator to split a line-numbered document
// into named sections and return pure structured JSON. The numbered document
// is appended directly after the template.
const SegmentPrompt = `Role
You're an expert in segmenting a document into useful chunks.

Task
Your task is to split the document into meaningful sections according to the document structure. You will be given a document with line number indications enclosed by "<<>>" signs (e.g., <<1>>). You will investigate the document structure and return a JSON object that includes the section name and a list of start/end line pairs. The name should be specific and unique, for example "Section 2 - Subsection 1 - Part 1".

Rules:
1. Return ONLY raw JSON. Do NOT include markdown code blocks (e.g., no ` + "```json" + `).
2. Names must be unique and specific.
3. If a segment is non-contiguous, include multiple line pairs.
4. Merge consecutive line pairs if they belong to the same segment (e.g., {1, 2} and {3, 4} -> {1, 4}).
5. Only include meaningful segments that contain substantive content; exclude metadata or sign-off sections.
6. Segments need to be split down to the smallest unit of the document structure. For example if there are subsections, it needs to be ground to subsection level.
7. If there is an identifier number for the segment then include it, for example "Part A - Clause 4" is better than "Part A - Interpretation".

Example Input:
"
<<1>>Introduction
<<2>>This is a sample document
<<3>>Section 1
<<4>>This section is about apples. Apples are:
<<5>>a) a fruit grown on a tree
<<6>>b) Eaten by humans
<<7>>From this fact we can see that apples are safe to eat.
<<8>>And they can be grown in my garden.
<<9>>However I need a big garden.
"

Example Output:
{
  "sections": [
    {
      "name": "Introduction",
      "line_pairs": [{"start": 1, "end": 2}]
    },
    {
      "name": "Section 1",
      "line_pairs": [{"start": 3, "end": 4}, {"start": 7, "end": 9}]
    },
    {
      "name": "Section 1 - Part A",
      "line_pairs": [{"start": 5, "end": 5}]
    },
    {
      "name": "Section 1 - Part B",
      "line_pairs": [{"start": 6, "end": 6}]
    }
  ]
}

Text to analyze:
`

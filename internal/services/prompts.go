package services

const chapterPrompt = `You are an educational AI assistant.
Analyze the YouTube video from the provided URL and divide it into logical learning segments (chapters).
Generate a maximum of 5 chapters.

Return a list of chapters with their start/end times and names.`

// segmentPromptTemplate takes the chapter's start and end time in seconds.
const segmentPromptTemplate = `You are an educational AI assistant.
Analyze the video segment from %gs to %gs.

Based on the content of this segment, decide whether to generate a 'quiz', an 'infographic', a 'graph', or a 'three_d_model'.

- If there are clear facts to test, generate a 'quiz'.
- If the content is about any mathematical functions, equations, or data trends that can be plotted, generate a 'graph'.
- If the content describes a physical object, a 3D geometric shape, or a spatial concept that is best understood in 3D (e.g., a cube, a molecule, the solar system), generate a 'three_d_model'.
- Otherwise, if the content is conceptual or visual, generate an 'infographic' summary.

Return the result as a JSON object with a field "type" which is "quiz", "infographic", "graph", or "three_d_model", and a field "content".
The priority is to generate a 'three_d_model' or 'graph' if possible.

For Infographic, provide a 'infographic_title', 'infographic_description', and a detailed 'image_prompt'.
For Quiz, provide 'question', 'options', and 'answer'.
For Graph, provide 'graph_title', 'graph_description', 'equations' (a list of LaTeX string representations), 'x_label', and 'y_label'.

For three_d_model:
- Provide a 'three_d_model_description' explaining what the model represents.
- Provide 'three_d_model_code'. This MUST be a valid JavaScript code string.
- The code should assume a standard Three.js setup is available via global 'THREE' variable.
- The code must implement a function init3D(scene) where scene is a THREE.Scene object passed from the host environment.
- Inside init3D, create meshes, lights, or helpers and add them to the scene.
- Do NOT create a renderer, camera, or animation loop; the host environment handles that.
- Optionally return an object with an update(time) function for per-frame animation.
- Ensure the code string ONLY contains the function definition(s) needed, primarily init3D.`

package api

const indexHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>AI Assistant</title></head>
<body style="background:#111;color:#0f0;text-align:center;font-family:monospace">
<h1>AI Assistant</h1>
<input id="cmd" placeholder="np: led on" style="width:260px"/>
<button onclick="send()">Send</button>
<pre id="log" style="white-space:pre-wrap;margin-top:16px"></pre>
<pre id="frame" style="display:inline-block;border:1px solid #0f0;padding:4px 8px;text-align:left"></pre>
<script>
async function send() {
  const el = document.getElementById("cmd");
  const c = el.value;
  if (!c) return;
  const r = await fetch('/cmd?text=' + encodeURIComponent(c));
  const t = await r.text();
  document.getElementById("log").innerText = t;
  el.value = "";
  el.focus();
  refresh();
}
async function refresh() {
  const r = await fetch('/state');
  const s = await r.json();
  document.getElementById("frame").innerText =
    (s.line1 || "") + "\n" + (s.line2 || "") + "\nLED: " + (s.led ? "ON" : "OFF");
}
document.getElementById("cmd").addEventListener("keydown", e => { if (e.key === "Enter") send(); });
refresh();
</script>
</body>
</html>
`
